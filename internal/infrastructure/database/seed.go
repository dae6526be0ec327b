package database

import (
	"log"

	"github.com/castrillo/cafepos-api/internal/domain/entity"
	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/pkg/utils"
	"gorm.io/gorm"
)

type seedProduct struct {
	name          string
	category      enum.ProductCategory
	cost          int64
	salePrice     int64
	employeePrice int64
	imageURL      string
}

// Opening menu, amounts in cents
var seedCatalog = []seedProduct{
	{name: "Iced Coffee", category: enum.CategoryColdDrinks, cost: 150, salePrice: 350, employeePrice: 250, imageURL: "https://images.unsplash.com/photo-1686575669781-74e03080541b?w=400"},
	{name: "Iced Latte", category: enum.CategoryColdDrinks, cost: 180, salePrice: 400, employeePrice: 300, imageURL: "https://images.unsplash.com/photo-1517487881594-2787fef5ebf7?w=400"},
	{name: "Cold Brew", category: enum.CategoryColdDrinks, cost: 160, salePrice: 375, employeePrice: 275, imageURL: "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400"},
	{name: "Iced Mocha", category: enum.CategoryColdDrinks, cost: 200, salePrice: 450, employeePrice: 325, imageURL: "https://images.unsplash.com/photo-1542843137-8791a6904d14?w=400"},
	{name: "Iced Caramel Macchiato", category: enum.CategoryColdDrinks, cost: 220, salePrice: 475, employeePrice: 350, imageURL: "https://images.unsplash.com/photo-1599578675144-ba7ef5e19186?w=400"},
	{name: "Iced Vanilla Latte", category: enum.CategoryColdDrinks, cost: 190, salePrice: 425, employeePrice: 300, imageURL: "https://images.unsplash.com/photo-1602882480284-ad6a30ba4f07?w=400"},
	{name: "Strawberry Smoothie", category: enum.CategoryColdDrinks, cost: 250, salePrice: 550, employeePrice: 400, imageURL: "https://images.unsplash.com/photo-1622597468620-656aa1f981ea?w=400"},
	{name: "Mango Smoothie", category: enum.CategoryColdDrinks, cost: 250, salePrice: 550, employeePrice: 400, imageURL: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400"},
	{name: "Berry Blast Smoothie", category: enum.CategoryColdDrinks, cost: 270, salePrice: 575, employeePrice: 425, imageURL: "https://images.unsplash.com/photo-1505252585461-04db1eb84625?w=400"},
	{name: "Green Detox Smoothie", category: enum.CategoryColdDrinks, cost: 280, salePrice: 600, employeePrice: 450, imageURL: "https://images.unsplash.com/photo-1610970881699-44a5587cabec?w=400"},
	{name: "Lemonade", category: enum.CategoryColdDrinks, cost: 100, salePrice: 250, employeePrice: 175, imageURL: "https://images.unsplash.com/photo-1523677011781-c91d1bbe4d1e?w=400"},
	{name: "Orange Juice", category: enum.CategoryColdDrinks, cost: 120, salePrice: 300, employeePrice: 200, imageURL: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400"},
	{name: "Apple Juice", category: enum.CategoryColdDrinks, cost: 120, salePrice: 300, employeePrice: 200, imageURL: "https://images.unsplash.com/photo-1609501676725-7186f017a4b7?w=400"},
	{name: "Iced Tea", category: enum.CategoryColdDrinks, cost: 80, salePrice: 225, employeePrice: 150, imageURL: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400"},
	{name: "Peach Iced Tea", category: enum.CategoryColdDrinks, cost: 100, salePrice: 275, employeePrice: 200, imageURL: "https://images.unsplash.com/photo-1499638309848-e9968540da83?w=400"},
	{name: "Mint Lemonade", category: enum.CategoryColdDrinks, cost: 130, salePrice: 325, employeePrice: 225, imageURL: "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400"},
	{name: "Coconut Water", category: enum.CategoryColdDrinks, cost: 150, salePrice: 350, employeePrice: 250, imageURL: "https://images.unsplash.com/photo-1605367587000-15a5d37715e4?w=400"},
	{name: "Watermelon Juice", category: enum.CategoryColdDrinks, cost: 140, salePrice: 325, employeePrice: 225, imageURL: "https://images.unsplash.com/photo-1587049633312-d628ae50a8ae?w=400"},
	{name: "Pineapple Juice", category: enum.CategoryColdDrinks, cost: 130, salePrice: 300, employeePrice: 200, imageURL: "https://images.unsplash.com/photo-1565299543923-37dd37887442?w=400"},
	{name: "Frappuccino", category: enum.CategoryColdDrinks, cost: 240, salePrice: 525, employeePrice: 375, imageURL: "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=400"},
	{name: "Chocolate Shake", category: enum.CategoryColdDrinks, cost: 230, salePrice: 500, employeePrice: 350, imageURL: "https://images.unsplash.com/photo-1542574271-7f3b92e6c821?w=400"},
	{name: "Vanilla Shake", category: enum.CategoryColdDrinks, cost: 220, salePrice: 475, employeePrice: 325, imageURL: "https://images.unsplash.com/photo-1579954115545-a95591f28bfc?w=400"},
	{name: "Strawberry Shake", category: enum.CategoryColdDrinks, cost: 230, salePrice: 500, employeePrice: 350, imageURL: "https://images.unsplash.com/photo-1623428454614-abaf00244e52?w=400"},
	{name: "Oreo Shake", category: enum.CategoryColdDrinks, cost: 250, salePrice: 550, employeePrice: 400, imageURL: "https://images.unsplash.com/photo-1581006852262-e4307cf6283a?w=400"},
	{name: "Bubble Tea", category: enum.CategoryColdDrinks, cost: 200, salePrice: 450, employeePrice: 325, imageURL: "https://images.unsplash.com/photo-1525385133512-2f3bdd039054?w=400"},
	{name: "Hot Coffee", category: enum.CategoryHotDrinks, cost: 100, salePrice: 250, employeePrice: 175, imageURL: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400"},
	{name: "Espresso", category: enum.CategoryHotDrinks, cost: 80, salePrice: 200, employeePrice: 150, imageURL: "https://images.unsplash.com/photo-1510591509098-f4fdc6d0ff04?w=400"},
	{name: "Cappuccino", category: enum.CategoryHotDrinks, cost: 140, salePrice: 350, employeePrice: 250, imageURL: "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=400"},
	{name: "Latte", category: enum.CategoryHotDrinks, cost: 150, salePrice: 375, employeePrice: 275, imageURL: "https://images.unsplash.com/photo-1691723247105-57e32577dc72?w=400"},
	{name: "Americano", category: enum.CategoryHotDrinks, cost: 120, salePrice: 300, employeePrice: 200, imageURL: "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400"},
	{name: "Mocha", category: enum.CategoryHotDrinks, cost: 180, salePrice: 425, employeePrice: 300, imageURL: "https://images.unsplash.com/photo-1578374173704-966697ae5e8c?w=400"},
	{name: "Macchiato", category: enum.CategoryHotDrinks, cost: 160, salePrice: 375, employeePrice: 275, imageURL: "https://images.unsplash.com/photo-1557006021-b85faa2bc5e2?w=400"},
	{name: "Hot Chocolate", category: enum.CategoryHotDrinks, cost: 150, salePrice: 350, employeePrice: 250, imageURL: "https://images.unsplash.com/photo-1542990253-0d0f5be5f0ed?w=400"},
	{name: "Chai Latte", category: enum.CategoryHotDrinks, cost: 160, salePrice: 375, employeePrice: 275, imageURL: "https://images.unsplash.com/photo-1578374173704-966697ae5e8c?w=400"},
	{name: "Matcha Latte", category: enum.CategoryHotDrinks, cost: 200, salePrice: 450, employeePrice: 325, imageURL: "https://images.unsplash.com/photo-1536013080062-84d3e4fcf21f?w=400"},
	{name: "Green Tea", category: enum.CategoryHotDrinks, cost: 60, salePrice: 200, employeePrice: 150, imageURL: "https://images.unsplash.com/photo-1564890369478-c89ca6d9cde9?w=400"},
	{name: "Peppermint Tea", category: enum.CategoryHotDrinks, cost: 70, salePrice: 225, employeePrice: 175, imageURL: "https://images.unsplash.com/photo-1597318110274-1f1335e0a83d?w=400"},
	{name: "Croissant", category: enum.CategorySnacks, cost: 120, salePrice: 300, employeePrice: 200, imageURL: "https://images.unsplash.com/photo-1709798289100-7b46217e0325?w=400"},
	{name: "Chocolate Croissant", category: enum.CategorySnacks, cost: 140, salePrice: 350, employeePrice: 250, imageURL: "https://images.unsplash.com/photo-1632636575859-45d1950fdc78?w=400"},
	{name: "Blueberry Muffin", category: enum.CategorySnacks, cost: 100, salePrice: 275, employeePrice: 200, imageURL: "https://images.unsplash.com/photo-1607958996333-41aef7caefaa?w=400"},
	{name: "Chocolate Chip Muffin", category: enum.CategorySnacks, cost: 100, salePrice: 275, employeePrice: 200, imageURL: "https://images.pexels.com/photos/3650437/pexels-photo-3650437.jpeg?w=400"},
	{name: "Cinnamon Roll", category: enum.CategorySnacks, cost: 130, salePrice: 350, employeePrice: 250, imageURL: "https://images.unsplash.com/photo-1509365465985-25d11c17e812?w=400"},
	{name: "Bagel", category: enum.CategorySnacks, cost: 80, salePrice: 250, employeePrice: 175, imageURL: "https://images.unsplash.com/photo-1549931319-a545dcf3bc3c?w=400"},
	{name: "Sandwich", category: enum.CategorySnacks, cost: 250, salePrice: 600, employeePrice: 450, imageURL: "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?w=400"},
	{name: "Cookies", category: enum.CategorySnacks, cost: 60, salePrice: 175, employeePrice: 125, imageURL: "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=400"},
	{name: "Brownie", category: enum.CategorySnacks, cost: 120, salePrice: 300, employeePrice: 200, imageURL: "https://images.unsplash.com/photo-1607920591413-4ec007e70023?w=400"},
	{name: "Cheesecake", category: enum.CategorySnacks, cost: 200, salePrice: 500, employeePrice: 350, imageURL: "https://images.unsplash.com/photo-1524351199678-941a58a3df50?w=400"},
	{name: "Donut", category: enum.CategorySnacks, cost: 80, salePrice: 200, employeePrice: 150, imageURL: "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400"},
	{name: "Leche Extra", category: enum.CategoryExtras, cost: 30, salePrice: 75, employeePrice: 50, imageURL: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400"},
	{name: "Shot Espresso", category: enum.CategoryExtras, cost: 50, salePrice: 100, employeePrice: 75, imageURL: "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400"},
	{name: "Crema Batida", category: enum.CategoryExtras, cost: 40, salePrice: 100, employeePrice: 75, imageURL: "https://images.unsplash.com/photo-1625772452859-1c03d5bf1137?w=400"},
	{name: "Jarabe Vainilla", category: enum.CategoryExtras, cost: 30, salePrice: 75, employeePrice: 50, imageURL: "https://images.unsplash.com/photo-1481391032119-d89fee407e44?w=400"},
	{name: "Jarabe Caramelo", category: enum.CategoryExtras, cost: 30, salePrice: 75, employeePrice: 50, imageURL: "https://images.unsplash.com/photo-1481391032119-d89fee407e44?w=400"},
	{name: "Jarabe Avellana", category: enum.CategoryExtras, cost: 30, salePrice: 75, employeePrice: 50, imageURL: "https://images.unsplash.com/photo-1481391032119-d89fee407e44?w=400"},
	{name: "Chocolate Extra", category: enum.CategoryExtras, cost: 40, salePrice: 100, employeePrice: 75, imageURL: "https://images.unsplash.com/photo-1511381939415-e44015466834?w=400"},
	{name: "Leche de Almendra", category: enum.CategoryExtras, cost: 50, salePrice: 125, employeePrice: 100, imageURL: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400"},
	{name: "Leche de Avena", category: enum.CategoryExtras, cost: 50, salePrice: 125, employeePrice: 100, imageURL: "https://images.unsplash.com/photo-1600788907416-456578634209?w=400"},
	{name: "Topping Oreo", category: enum.CategoryExtras, cost: 50, salePrice: 125, employeePrice: 100, imageURL: "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=400"},
}

type seedUser struct {
	email    string
	name     string
	role     string
	password string
}

var seedUsers = []seedUser{
	{email: "admin@pos.com", name: "Admin User", role: entity.RoleAdmin, password: "admin123"},
	{email: "cashier@pos.com", name: "Cashier User", role: entity.RoleCashier, password: "cashier123"},
}

// SeedDefaultData loads the opening menu and default staff accounts. It is
// idempotent: a catalog with any products in it is left alone, and seed users
// are only created when their email is absent.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return err
	}

	if productCount == 0 {
		products := make([]entity.Product, 0, len(seedCatalog))
		for _, p := range seedCatalog {
			products = append(products, entity.Product{
				Name:          p.name,
				Category:      p.category,
				Cost:          p.cost,
				SalePrice:     p.salePrice,
				EmployeePrice: p.employeePrice,
				ImageURL:      p.imageURL,
			})
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d catalog products", len(products))
	}

	for _, u := range seedUsers {
		var existing entity.User
		if err := db.Where("email = ?", u.email).First(&existing).Error; err == nil {
			continue
		}
		hashed, err := utils.HashPassword(u.password)
		if err != nil {
			return err
		}
		user := entity.User{
			Email:    u.email,
			Name:     u.name,
			Role:     u.role,
			Password: hashed,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warning: failed to create seed user %s: %v", u.email, err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
