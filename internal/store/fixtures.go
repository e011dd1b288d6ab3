package store

import (
	"time"

	"github.com/mamadbah2/bizdash/internal/domain/models"
)

// Seeded returns a store populated with the demo rows shown on first start.
func Seeded() *Store {
	s := New()

	s.Transactions = NewCollection(
		models.Transaction{ID: "1", Date: day(2025, 5, 15), Description: "Honey jar sales", Amount: 250, Type: models.TransactionIncome, Category: "Sales", Business: models.BusinessHoney},
		models.Transaction{ID: "2", Date: day(2025, 5, 16), Description: "Beekeeping supplies", Amount: 80, Type: models.TransactionExpense, Category: "Equipment", Business: models.BusinessHoney},
		models.Transaction{ID: "3", Date: day(2025, 5, 17), Description: "Weed dispensary sales", Amount: 1200, Type: models.TransactionIncome, Category: "Sales", Business: models.BusinessWeed},
		models.Transaction{ID: "4", Date: day(2025, 5, 18), Description: "Growing nutrients", Amount: 150, Type: models.TransactionExpense, Category: "Supplies", Business: models.BusinessWeed},
		models.Transaction{ID: "5", Date: day(2025, 5, 19), Description: "Fish market sales", Amount: 400, Type: models.TransactionIncome, Category: "Sales", Business: models.BusinessFish},
		models.Transaction{ID: "6", Date: day(2025, 5, 20), Description: "Fish feed", Amount: 120, Type: models.TransactionExpense, Category: "Feed", Business: models.BusinessFish},
	)

	s.Strains = NewCollection(
		models.Strain{ID: "1", Name: "Blue Dream", Type: models.StrainHybrid, THCPercentage: num(22), CBDPercentage: num(1), Notes: "Popular strain with balanced effects", DateAdded: day(2025, 4, 10)},
		models.Strain{ID: "2", Name: "OG Kush", Type: models.StrainIndica, THCPercentage: num(25), CBDPercentage: num(0.5), Notes: "Classic indica with strong effects", DateAdded: day(2025, 4, 15)},
		models.Strain{ID: "3", Name: "Sour Diesel", Type: models.StrainSativa, THCPercentage: num(20), CBDPercentage: num(1.2), Notes: "Energizing sativa strain", DateAdded: day(2025, 5, 1)},
	)

	s.Customers = NewCollection(
		models.Customer{ID: "1", Name: "John Smith", Email: "john@example.com", Phone: "555-0101", TotalOrders: 15, TotalSpent: 1250, LastOrderDate: dayPtr(2025, 5, 20), Status: models.CustomerActive},
		models.Customer{ID: "2", Name: "Sarah Johnson", Email: "sarah@example.com", Phone: "555-0102", TotalOrders: 8, TotalSpent: 680, LastOrderDate: dayPtr(2025, 5, 18), Status: models.CustomerActive},
		models.Customer{ID: "3", Name: "Mike Wilson", Email: "mike@example.com", Phone: "555-0103", TotalOrders: 22, TotalSpent: 2100, LastOrderDate: dayPtr(2025, 5, 22), Status: models.CustomerActive},
		models.Customer{ID: "4", Name: "Lisa Brown", Email: "lisa@example.com", Phone: "555-0104", TotalOrders: 5, TotalSpent: 320, LastOrderDate: dayPtr(2025, 4, 15), Status: models.CustomerInactive},
	)

	s.Suppliers = NewCollection(
		models.Supplier{ID: "1", Name: "Hive & Frame Co.", ContactPerson: "Paula Meyer", Email: "orders@hiveframe.example.com", Phone: "555-0201-100", ProductCategory: "Beekeeping", LastOrderDate: day(2025, 5, 2), Rating: 5},
		models.Supplier{ID: "2", Name: "GreenGrow Nutrients", ContactPerson: "Tom Alvarez", Email: "sales@greengrow.example.com", Phone: "555-0202-200", ProductCategory: "Nutrients", LastOrderDate: day(2025, 5, 10), Rating: 4},
		models.Supplier{ID: "3", Name: "AquaFeed Ltd.", ContactPerson: "Nina Park", Email: "nina@aquafeed.example.com", Phone: "555-0203-300", ProductCategory: "Fish Feed", LastOrderDate: day(2025, 4, 28), Rating: 3},
	)

	s.Equipment = NewCollection(
		models.EquipmentItem{ID: "eq1", Name: "Honey Extractor HXT-5000", Type: "Processing", PurchaseDate: day(2023, 3, 15), Status: models.EquipmentOperational, Location: "Honey House A", AssignedTo: "Honey Team", LastMaintenanceDate: dayPtr(2025, 3, 1)},
		models.EquipmentItem{ID: "eq2", Name: "Cannabis Trimmer CT-Deluxe", Type: "Cultivation", PurchaseDate: day(2024, 1, 20), Status: models.EquipmentMaintenance, Location: "Weed Grow Room 3", LastMaintenanceDate: dayPtr(2025, 5, 10)},
		models.EquipmentItem{ID: "eq3", Name: "Fish Tank System FTS-10", Type: "Aquaculture", PurchaseDate: day(2022, 11, 5), Status: models.EquipmentOperational, Location: "Fish Farm Tank Bay 1", AssignedTo: "Fish Team"},
		models.EquipmentItem{ID: "eq4", Name: "Mushroom Humidifier MH-Pro", Type: "Cultivation", PurchaseDate: day(2023, 8, 10), Status: models.EquipmentRequiresRepair, Location: "Mushroom Grow Tent 2", AssignedTo: "Mushroom Team", LastMaintenanceDate: dayPtr(2024, 12, 15)},
		models.EquipmentItem{ID: "eq5", Name: "Delivery Van DV-01", Type: "Logistics", PurchaseDate: day(2022, 5, 1), Status: models.EquipmentOperational, Location: "Garage", AssignedTo: "Logistics Dept", LastMaintenanceDate: dayPtr(2025, 4, 20)},
		models.EquipmentItem{ID: "eq6", Name: "Industrial Scale IS-100kg", Type: "General Use", PurchaseDate: day(2024, 2, 1), Status: models.EquipmentDecommissioned, Location: "Storage Unit B"},
	)

	s.Compliance = NewCollection(
		models.ComplianceDoc{ID: "1", Title: "Beekeeping License", Type: models.ComplianceLicense, Status: models.ComplianceValid, ExpiryDate: day(2026, 3, 15), Business: models.BusinessHoney, Description: "State beekeeping operation license"},
		models.ComplianceDoc{ID: "2", Title: "Cannabis Cultivation License", Type: models.ComplianceLicense, Status: models.ComplianceExpiringSoon, ExpiryDate: day(2025, 7, 30), Business: models.BusinessWeed, Description: "Legal cannabis cultivation permit"},
		models.ComplianceDoc{ID: "3", Title: "Aquaculture Permit", Type: models.CompliancePermit, Status: models.ComplianceValid, ExpiryDate: day(2026, 9, 10), Business: models.BusinessFish, Description: "Fish farming operation permit"},
		models.ComplianceDoc{ID: "4", Title: "Food Safety Certificate", Type: models.ComplianceCertificate, Status: models.ComplianceValid, ExpiryDate: day(2025, 12, 20), Business: models.BusinessMushrooms, Description: "Food safety handling certification"},
	)

	s.Tasks = NewCollection(
		models.Task{ID: "1", Title: "Prepare Q3 Report", Assignee: "Alice Wonderland", DueDate: day(2025, 7, 15), Status: models.TaskInProgress, Priority: models.PriorityHigh},
		models.Task{ID: "2", Title: "Update Supplier Contacts", Assignee: "Bob The Builder", DueDate: day(2025, 7, 10), Status: models.TaskToDo, Priority: models.PriorityMedium},
		models.Task{ID: "3", Title: "Client Follow-up Calls", Assignee: "Charlie Brown", DueDate: day(2025, 7, 5), Status: models.TaskDone, Priority: models.PriorityMedium},
		models.Task{ID: "4", Title: "Inventory Check - Honey Jars", Assignee: "Diana Prince", DueDate: day(2025, 7, 20), Status: models.TaskToDo, Priority: models.PriorityHigh, Description: "Count all honey jar SKUs in warehouse B."},
		models.Task{ID: "5", Title: "Website Maintenance", Assignee: "Edward Scissorhands", DueDate: day(2025, 7, 12), Status: models.TaskBlocked, Priority: models.PriorityLow, Description: "Waiting for server access."},
	)

	s.Events = NewCollection(
		models.CalendarEvent{ID: "1", Title: "Farmers Market - Downtown", Date: day(2025, 6, 30), Time: "08:00", Type: models.EventMarket, Description: "Weekly farmers market booth", Cost: num(45), Location: "Downtown Square"},
		models.CalendarEvent{ID: "2", Title: "Packaging Supplies", Date: day(2025, 7, 2), Type: models.EventExpenditure, Description: "Honey jars and labels", Cost: num(150)},
		models.CalendarEvent{ID: "3", Title: "Organic Market - Westside", Date: day(2025, 7, 5), Time: "09:00", Type: models.EventMarket, Description: "Monthly organic market", Cost: num(60), Location: "Westside Community Center"},
		models.CalendarEvent{ID: "4", Title: "Equipment Maintenance", Date: day(2025, 7, 8), Type: models.EventExpenditure, Description: "Honey extractor servicing", Cost: num(200)},
	)

	for _, summary := range []models.SummaryData{
		{Business: models.BusinessHoney, TotalSales: 12500, TotalExpenses: 4500, Profit: 8000, InventoryStatus: "Good", InventoryValue: 15000},
		{Business: models.BusinessWeed, TotalSales: 25000, TotalExpenses: 10000, Profit: 15000, InventoryStatus: "Low Stock", InventoryValue: 8000},
		{Business: models.BusinessFish, TotalSales: 8000, TotalExpenses: 3000, Profit: 5000, InventoryStatus: "Sufficient", InventoryValue: 12000},
		{Business: models.BusinessMushrooms, TotalSales: 15000, TotalExpenses: 6000, Profit: 9000, InventoryStatus: "High Stock", InventoryValue: 18000},
	} {
		s.SetSummary(summary)
	}

	return s
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

func num(v float64) *float64 { return &v }
