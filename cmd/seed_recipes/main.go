// Command seed_recipes inserts a handful of sample recipes for local
// development so the browse and search pages have content.
package main

import (
	"log"

	"github.com/aprilfamily/cookbook-backend/config"
	"github.com/aprilfamily/cookbook-backend/internal/database"
	"github.com/aprilfamily/cookbook-backend/internal/models"
)

var sampleRecipes = []models.Recipe{
	{
		Title:        "Grandma's Scrambled Eggs",
		Description:  "Soft scrambled eggs the way grandma made them.",
		Ingredients:  "4 eggs\n2 tbsp butter\nsalt\nblack pepper",
		Instructions: "Whisk the eggs. Melt the butter over low heat. Stir gently until just set.",
		PrepTime:     5,
		CookTime:     5,
		Servings:     2,
		Category:     "Breakfast",
		AuthorName:   "Admin",
	},
	{
		Title:        "Sunday Pot Roast",
		Description:  "Slow-braised chuck roast with root vegetables.",
		Ingredients:  "3 lb chuck roast\n4 carrots\n2 onions\n4 potatoes\nbeef stock\nthyme",
		Instructions: "Sear the roast. Add vegetables and stock. Braise covered at 300F for 3 hours.",
		PrepTime:     20,
		CookTime:     180,
		Servings:     6,
		Category:     "Dinner",
		AuthorName:   "Admin",
	},
	{
		Title:        "Lemon Icebox Pie",
		Description:  "No-bake lemon pie from the recipe box.",
		Ingredients:  "1 can condensed milk\n3 lemons\n1 graham cracker crust\nwhipped cream",
		Instructions: "Mix condensed milk with lemon juice and zest. Pour into crust. Chill 4 hours.",
		PrepTime:     15,
		CookTime:     0,
		Servings:     8,
		Category:     "Dessert",
		AuthorName:   "Admin",
	},
	{
		Title:        "Weeknight Chicken Soup",
		Description:  "Quick chicken soup with whatever is in the crisper.",
		Ingredients:  "2 chicken breasts\n2 carrots\n2 celery stalks\n1 onion\negg noodles\nchicken stock",
		Instructions: "Simmer chicken in stock. Add vegetables, then noodles. Shred the chicken and return it.",
		PrepTime:     10,
		CookTime:     35,
		Servings:     4,
		Category:     "Dinner",
		AuthorName:   "Admin",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	for _, recipe := range sampleRecipes {
		if err := db.Create(&recipe).Error; err != nil {
			log.Printf("Failed to save recipe %q: %v", recipe.Title, err)
			continue
		}
		log.Printf("Successfully created recipe: %s", recipe.Title)
	}

	log.Printf("Seeded %d recipes", len(sampleRecipes))
}
