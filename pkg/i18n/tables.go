package i18n

// Keys are stored as written; New normalizes them to NFC.
var businessTypes = map[string]string{
	"מסעדה":           "Restaurant",
	"חנות בגדים":      "Clothing Store",
	"משרד עורכי דין":  "Law Firm",
	"חנות נעליים":     "Shoe Store",
	"סלון יופי":       "Beauty Salon",
	"מכון כושר":       "Gym",
	"חנות אלקטרוניקה": "Electronics Store",
	"חנות ספרים":      "Bookstore",
	"בית קפה":         "Cafe",
	"חנות מתנות":      "Gift Shop",
	"מרפאה":           "Clinic",
	"משרד אדריכלים":   "Architecture Firm",
	"חנות רהיטים":     "Furniture Store",
	"סוכנות נסיעות":   "Travel Agency",
	"חנות ספורט":      "Sports Store",
	"מכון לימודים":    "Educational Institute",
	"סוכנות ביטוח":    "Insurance Agency",
	"חנות כלי בית":    "Home Goods Store",
	"מכון טיפוח":      "Wellness Center",
	"חנות צעצועים":    "Toy Store",
}

var targetAudiences = map[string]string{
	"משפחות":          "Families",
	"צעירים":          "Young Adults",
	"אנשי עסקים":      "Business Professionals",
	"סטודנטים":        "Students",
	"ילדים":           "Children",
	"מבוגרים":         "Adults",
	"נשים":            "Women",
	"גברים":           "Men",
	"משפחות צעירות":   "Young Families",
	"פנסיונרים":       "Retirees",
	"משפחות עם ילדים": "Families with Children",
	"אנשי מקצוע":      "Professionals",
	"מתבגרים":         "Teenagers",
	"אנשי קריירה":     "Career Professionals",
	"משפחות גדולות":   "Large Families",
}
