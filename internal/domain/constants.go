package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxDiscountPercent = 100 // граница включительно, нижняя граница строго > 0
	MaxLabelLength     = 100
)

// DefaultDiscountRules фиксированный набор тиров для операции сброса
// Диапазоны намеренно пересекаются: resolver возвращает все совпадения
var DefaultDiscountRules = []*DiscountRule{
	{BookingCountFrom: 1, BookingCountTo: 10, DiscountPercent: 5, Label: "Loyalty", IsActive: true},
	{BookingCountFrom: 2, BookingCountTo: 2, DiscountPercent: 10, Label: "Returning client", IsActive: true},
	{BookingCountFrom: 5, BookingCountTo: 5, DiscountPercent: 20, Label: "Fifth session", IsActive: true},
}
