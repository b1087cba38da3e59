package words

// defaultCategories are the categories available without any words
// directory configured.
var defaultCategories = map[string][]string{
	"Animals":   {"ELEPHANT", "GIRAFFE", "PENGUIN", "TIGER", "DOLPHIN"},
	"Countries": {"BRAZIL", "JAPAN", "AUSTRALIA", "FRANCE", "CANADA"},
	"Fruits":    {"APPLE", "BANANA", "ORANGE", "STRAWBERRY", "PINEAPPLE"},
	"Sports":    {"FOOTBALL", "TENNIS", "BASKETBALL", "SWIMMING", "VOLLEYBALL"},
}
