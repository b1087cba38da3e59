package words

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewBank_BuiltinCategories(t *testing.T) {
	bank := NewBank()

	categories := bank.Categories()
	expected := []string{"Animals", "Countries", "Fruits", "Sports"}

	if len(categories) != len(expected) {
		t.Fatalf("Expected %d categories, got %d: %v", len(expected), len(categories), categories)
	}
	for i, name := range expected {
		if categories[i] != name {
			t.Errorf("Expected category %q at position %d, got %q", name, i, categories[i])
		}
	}
}

func TestBank_WordFor(t *testing.T) {
	bank := NewBank()

	fruits, err := bank.Words("Fruits")
	if err != nil {
		t.Fatalf("Failed to list Fruits: %v", err)
	}

	inList := func(word string) bool {
		for _, w := range fruits {
			if w == word {
				return true
			}
		}
		return false
	}

	// Selection must always come from the chosen category's list
	for i := 0; i < 50; i++ {
		word, err := bank.WordFor("Fruits")
		if err != nil {
			t.Fatalf("WordFor failed: %v", err)
		}
		if !inList(word) {
			t.Fatalf("Word %q is not in the Fruits list", word)
		}
		if !uppercaseOnly(word) {
			t.Fatalf("Word %q is not uppercase A-Z", word)
		}
	}
}

func TestBank_WordFor_UnknownCategory(t *testing.T) {
	bank := NewBank()

	_, err := bank.WordFor("Vegetables")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
}

func TestNewBankFromDir(t *testing.T) {
	dir := t.TempDir()

	writeList := func(filename string, list List) {
		t.Helper()
		data, err := json.Marshal(list)
		if err != nil {
			t.Fatalf("Failed to marshal list: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
			t.Fatalf("Failed to write list file: %v", err)
		}
	}

	// A new category, an override of a built-in, and an invalid file
	writeList("colors.json", List{Name: "Colors", Words: []string{"RED", "GREEN", "BLUE"}})
	writeList("fruits.json", List{Name: "Fruits", Words: []string{"MANGO"}})
	writeList("bad.json", List{Name: "Bad", Words: []string{"lowercase"}})

	bank, err := NewBankFromDir(dir)
	if err != nil {
		t.Fatalf("Failed to create bank from dir: %v", err)
	}

	word, err := bank.WordFor("Colors")
	if err != nil {
		t.Fatalf("Expected Colors category to be loaded: %v", err)
	}
	if word != "RED" && word != "GREEN" && word != "BLUE" {
		t.Errorf("Unexpected word for Colors: %q", word)
	}

	// Override replaces the built-in list entirely
	word, err = bank.WordFor("Fruits")
	if err != nil {
		t.Fatalf("Fruits category missing after override: %v", err)
	}
	if word != "MANGO" {
		t.Errorf("Expected override word MANGO, got %q", word)
	}

	// Invalid files are skipped, not fatal
	if _, err := bank.WordFor("Bad"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Expected invalid list to be skipped, got %v", err)
	}
}

func TestNewBankFromDir_MissingDir(t *testing.T) {
	if _, err := NewBankFromDir("/non/existent/path"); err == nil {
		t.Error("Expected error for non-existent words directory")
	}
}

func TestValidateList(t *testing.T) {
	tests := []struct {
		name    string
		list    List
		wantErr bool
	}{
		{"valid", List{Name: "Fruits", Words: []string{"APPLE"}}, false},
		{"missing name", List{Words: []string{"APPLE"}}, true},
		{"no words", List{Name: "Fruits"}, true},
		{"lowercase word", List{Name: "Fruits", Words: []string{"apple"}}, true},
		{"word with digit", List{Name: "Fruits", Words: []string{"APPLE2"}}, true},
		{"empty word", List{Name: "Fruits", Words: []string{""}}, true},
		{"duplicate word", List{Name: "Fruits", Words: []string{"APPLE", "APPLE"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateList(&tt.list)
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}
