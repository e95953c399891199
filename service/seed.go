package service

import (
	"time"

	"github.com/blakekali/blakeprintz/domain"
	"github.com/shopspring/decimal"
)

// First-run fixtures. Account and stock seeds go through the persistent
// store once; the order board and training catalog are rebuilt in memory on
// every start.

func seedAccounts() []domain.Account {
	return []domain.Account{
		{
			ID:       "1",
			Email:    "blake@blakeprintz.com",
			Password: "password123",
			Name:     "Blake Printz",
			StaffID:  "10001",
			Role:     domain.RoleAdmin,
		},
		{
			ID:       "2",
			Email:    "john@blakeprintz.com",
			Password: "password123",
			Name:     "John",
			StaffID:  "32112",
			Role:     domain.RoleStaff,
		},
	}
}

func seedStock(now time.Time) []domain.StockItem {
	qty := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []domain.StockItem{
		{ID: "1", Name: "PLA Filament - Black", Category: domain.CategoryFilament, Quantity: qty("15"), Unit: domain.UnitKilogram, MinQuantity: qty("5"), LastUpdated: now},
		{ID: "2", Name: "PLA Filament - White", Category: domain.CategoryFilament, Quantity: qty("12"), Unit: domain.UnitKilogram, MinQuantity: qty("5"), LastUpdated: now},
		{ID: "3", Name: "PETG Filament - Clear", Category: domain.CategoryFilament, Quantity: qty("8"), Unit: domain.UnitKilogram, MinQuantity: qty("3"), LastUpdated: now},
		{ID: "4", Name: "Nozzles 0.4mm", Category: domain.CategoryParts, Quantity: qty("25"), Unit: domain.UnitPieces, MinQuantity: qty("10"), LastUpdated: now},
		{ID: "5", Name: "Build Plates", Category: domain.CategoryParts, Quantity: qty("6"), Unit: domain.UnitPieces, MinQuantity: qty("2"), LastUpdated: now},
		{ID: "6", Name: "Isopropyl Alcohol", Category: domain.CategorySupplies, Quantity: qty("3"), Unit: domain.UnitLitre, MinQuantity: qty("2"), LastUpdated: now},
	}
}

func seedOrders(now time.Time) []domain.Order {
	today := now.Format("1/2/2006")
	yesterday := now.Add(-24 * time.Hour).Format("1/2/2006")
	total := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []domain.Order{
		{
			ID:           "3DP-001",
			CustomerName: "TechCorp Industries",
			Items:        "Custom Bracket (x5), Gear Assembly (x2)",
			Material:     "PLA",
			PrintTime:    "4h 30m",
			Total:        total("125.50"),
			Status:       domain.OrderPending,
			Date:         today,
			Notes:        "High priority - needed by Friday",
		},
		{
			ID:           "3DP-002",
			CustomerName: "Design Studio LLC",
			Items:        "Prototype Housing, Button Caps (x10)",
			Material:     "ABS",
			PrintTime:    "6h 15m",
			Total:        total("189.00"),
			Status:       domain.OrderPrinting,
			Date:         today,
			Notes:        "Client will pick up in person",
		},
		{
			ID:           "3DP-003",
			CustomerName: "Robotics Lab",
			Items:        "Robot Arm Components (x8)",
			Material:     "PETG",
			PrintTime:    "12h 45m",
			Total:        total("345.75"),
			Status:       domain.OrderCompleted,
			Date:         yesterday,
			Notes:        "Quality check completed",
		},
		{
			ID:           "3DP-004",
			CustomerName: "Maker Space",
			Items:        "Educational Models (x15)",
			Material:     "PLA",
			PrintTime:    "8h 20m",
			Total:        total("210.00"),
			Status:       domain.OrderPrinting,
			Date:         today,
		},
		{
			ID:           "1BP-001",
			CustomerName: "Sarah Jenkinson",
			Items:        "GhostKeychain",
			Material:     "PLA",
			PrintTime:    "32m",
			Total:        total("5.00"),
			Status:       domain.OrderPending,
			Date:         today,
		},
	}
}

func seedTraining() []domain.TrainingModule {
	return []domain.TrainingModule{
		{
			ID:          "1",
			Title:       "3D Printer Safety & Maintenance",
			Description: "Essential safety protocols and daily maintenance procedures",
			Duration:    "20 min",
			Category:    domain.TrainingSafety,
			Sections: []domain.TrainingSection{
				{
					Title:   "Safety First",
					Content: "Working with 3D printers requires attention to safety. Always ensure proper ventilation, never touch the hot end during or immediately after printing, and wear safety glasses when removing support material. Keep the work area clean and organized.",
				},
				{
					Title:   "Daily Maintenance",
					Content: "1. Check bed leveling before each print\n2. Clean the build plate with isopropyl alcohol\n3. Inspect nozzle for clogs or debris\n4. Verify filament is properly loaded\n5. Check all belts for proper tension\n6. Lubricate linear rails weekly",
				},
				{
					Title:   "Emergency Procedures",
					Content: "In case of fire, use the emergency stop button immediately and use a Class D fire extinguisher. Never use water on electrical fires. If the printer makes unusual noises or smells, stop the print immediately and notify your supervisor.",
				},
			},
		},
		{
			ID:          "2",
			Title:       "Filament Types & Materials",
			Description: "Understanding different materials and their applications",
			Duration:    "25 min",
			Category:    domain.TrainingTechnical,
			Progress:    60,
			Sections: []domain.TrainingSection{
				{
					Title:   "Common Materials",
					Content: "PLA (Polylactic Acid) is the most common material - easy to print, biodegradable, and great for prototypes. ABS offers higher strength and heat resistance. PETG combines the best of both with good strength and ease of printing. TPU is flexible for specialized applications.",
				},
				{
					Title:   "Material Properties",
					Content: "PLA: Print temp 190-220°C, bed temp 50-60°C\nABS: Print temp 220-250°C, bed temp 80-110°C\nPETG: Print temp 220-250°C, bed temp 70-80°C\nTPU: Print temp 210-230°C, bed temp 30-60°C\n\nAlways check manufacturer specifications for exact temperatures.",
				},
				{
					Title:   "Storage & Handling",
					Content: "Store filament in airtight containers with desiccant to prevent moisture absorption. Label all spools with material type and color. Rotate stock using FIFO method. Dry filament before use if it has been exposed to humidity.",
				},
			},
		},
		{
			ID:          "3",
			Title:       "Slicing Software Basics",
			Description: "Master the slicer software for optimal print quality",
			Duration:    "30 min",
			Category:    domain.TrainingTechnical,
			Sections: []domain.TrainingSection{
				{
					Title:   "Introduction to Slicing",
					Content: "Slicing software converts 3D models into instructions (G-code) that the printer can understand. We use industry-standard slicing software that offers precise control over every aspect of the print.",
				},
				{
					Title:   "Software",
					Content: "The current software we Install on all computers is Crealitys Slicer which is used by all the printers we currently have.",
				},
				{
					Title:   "Key Settings",
					Content: "Layer Height: 0.1-0.3mm (lower = better quality, longer print time)\nInfill: 10-20% for most parts, 50%+ for functional parts\nSupports: Enable for overhangs greater than 45°\nPrint Speed: 40-60mm/s for quality, up to 100mm/s for drafts\nWall Thickness: Minimum 2-3 perimeters",
				},
				{
					Title:   "Quality Control",
					Content: "Always preview the sliced model before printing. Check for proper support placement, verify estimated print time and material usage, and ensure the model is properly oriented on the build plate for optimal strength and surface finish.",
				},
			},
		},
		{
			ID:          "4",
			Title:       "Customer Service & Order Management",
			Description: "Best practices for handling customer orders and inquiries",
			Duration:    "18 min",
			Category:    domain.TrainingCustomerService,
			Sections: []domain.TrainingSection{
				{
					Title:   "Taking Orders",
					Content: "When receiving a new order, verify all specifications: material type, color, quantity, and deadline. Discuss any design modifications needed for printability. Provide accurate time and cost estimates. Always confirm order details in writing.",
				},
				{
					Title:   "Managing Expectations",
					Content: "1. Be honest about turnaround times\n2. Explain material limitations clearly\n3. Show examples of similar work\n4. Discuss post-processing options\n5. Set realistic quality expectations\n6. Communicate any delays immediately",
				},
				{
					Title:   "Quality Assurance",
					Content: "Inspect every print before delivery. Check for layer adhesion, dimensional accuracy, and surface finish. Remove all support material carefully. Clean parts with compressed air. Package items securely to prevent damage during transport.",
				},
			},
		},
		{
			ID:          "5",
			Title:       "Troubleshooting Common Issues",
			Description: "Identify and resolve common 3D printing problems",
			Duration:    "35 min",
			Category:    domain.TrainingTechnical,
			Sections: []domain.TrainingSection{
				{
					Title:   "Print Adhesion Problems",
					Content: "If prints are not sticking to the bed: Re-level the bed, clean the build surface thoroughly, increase bed temperature by 5-10°C, use adhesion aids like glue stick or hairspray, or reduce first layer speed to 20mm/s.",
				},
				{
					Title:   "Layer Issues",
					Content: "Stringing: Lower print temperature, increase retraction distance\nWarping: Increase bed temperature, use enclosure, add brim\nLayer shifting: Check belt tension, reduce print speed\nUnder-extrusion: Check for clogs, increase flow rate, verify filament diameter",
				},
				{
					Title:   "When to Ask for Help",
					Content: "Contact your supervisor if: The printer makes grinding or clicking noises, you smell burning plastic or electronics, the hot end temperature fluctuates wildly, you encounter repeated print failures, or you are unsure about any procedure. Safety first!",
				},
			},
		},
	}
}
