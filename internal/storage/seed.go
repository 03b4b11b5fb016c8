package storage

import "qualigo/internal/domain"

// SampleDishes is the seed catalog served until an admin overrides the
// dishes slot.
func SampleDishes() []domain.Dish {
	return []domain.Dish{
		{
			ID:          "1",
			Name:        "Buddha Bowl Glow",
			Description: "Arroz integral, quínoa, pollo a la parrilla, aguacate, remolacha y tahini",
			Price:       12.99,
			ImageURL:    "/images/dishes/buddha-bowl.jpg",
			Category:    domain.CategoryBowls,
			Calories:    520,
			Protein:     32,
			Ingredients: []string{"Arroz integral", "Quínoa", "Pollo", "Aguacate", "Remolacha", "Tahini"},
			Customizations: []domain.Customization{
				{
					ID:             "base-1",
					Name:           "Base",
					Type:           "base",
					Required:       true,
					MultipleSelect: false,
					Options: []domain.CustomizationOption{
						{ID: "base-1-1", Name: "Arroz integral", Price: 0},
						{ID: "base-1-2", Name: "Quínoa", Price: 0},
						{ID: "base-1-3", Name: "Espinaca", Price: 0},
					},
				},
				{
					ID:             "protein-1",
					Name:           "Proteína",
					Type:           "protein",
					Required:       true,
					MultipleSelect: false,
					Options: []domain.CustomizationOption{
						{ID: "prot-1-1", Name: "Pollo a la parrilla", Price: 0},
						{ID: "prot-1-2", Name: "Tofu", Price: 0},
						{ID: "prot-1-3", Name: "Salmón", Price: 2.00},
					},
				},
			},
		},
		{
			ID:          "2",
			Name:        "Wrap Saludable Verde",
			Description: "Tortilla integral, pechuga de pollo, lechuga, tomate, hummus",
			Price:       10.99,
			ImageURL:    "/images/dishes/green-wrap.jpg",
			Category:    domain.CategoryWraps,
			Calories:    450,
			Protein:     28,
			Ingredients: []string{"Tortilla integral", "Pechuga de pollo", "Lechuga", "Tomate", "Hummus"},
		},
		{
			ID:          "3",
			Name:        "Ensalada Kale Suprema",
			Description: "Kale, manzana, frutos secos, pollo, aderezo balsámico",
			Price:       11.99,
			ImageURL:    "/images/dishes/kale-salad.jpg",
			Category:    domain.CategorySalads,
			Calories:    380,
			Protein:     25,
			Ingredients: []string{"Kale", "Manzana", "Frutos secos", "Pollo", "Aderezo balsámico"},
		},
		{
			ID:          "4",
			Name:        "Smoothie Energético",
			Description: "Plátano, berries, proteína de vainilla, leche de almendra",
			Price:       7.99,
			ImageURL:    "/images/dishes/smoothie.jpg",
			Category:    domain.CategorySmoothies,
			Calories:    280,
			Protein:     20,
			Ingredients: []string{"Plátano", "Berries", "Proteína", "Leche de almendra"},
		},
		{
			ID:          "5",
			Name:        "Bowl Tropical Detox",
			Description: "Piña, mango, coco, granola, yogur griego",
			Price:       9.99,
			ImageURL:    "/images/dishes/tropical-bowl.jpg",
			Category:    domain.CategoryBowls,
			Calories:    340,
			Protein:     15,
			Ingredients: []string{"Piña", "Mango", "Coco", "Granola", "Yogur griego"},
		},
	}
}
