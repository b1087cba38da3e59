package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidList     = errors.New("invalid word list")
)

// List is one category file as stored on disk
type List struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Bank maps category names to candidate words and hands out random picks
type Bank struct {
	categories map[string][]string
	mu         sync.RWMutex
}

// NewBank creates a bank containing only the built-in categories
func NewBank() *Bank {
	b := &Bank{categories: make(map[string][]string)}
	for name, list := range defaultCategories {
		b.categories[name] = append([]string(nil), list...)
	}
	return b
}

// NewBankFromDir creates a bank with the built-in categories plus every
// valid list file found in dir. A file whose name matches a built-in
// category replaces it.
func NewBankFromDir(dir string) (*Bank, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("words directory does not exist: %s", dir)
	}

	b := NewBank()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read words directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		list, err := LoadList(filepath.Join(dir, entry.Name()))
		if err != nil {
			// Skip invalid lists; the validate command reports details
			continue
		}

		b.mu.Lock()
		b.categories[list.Name] = append([]string(nil), list.Words...)
		b.mu.Unlock()
	}

	return b, nil
}

// LoadList reads and validates a single category file
func LoadList(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse word list: %w", err)
	}

	if err := ValidateList(&list); err != nil {
		return nil, err
	}

	return &list, nil
}

// ValidateList checks that a list has a name and at least one word, every
// word is strictly uppercase A-Z, and no word repeats.
func ValidateList(list *List) error {
	if list.Name == "" {
		return fmt.Errorf("%w: missing category name", ErrInvalidList)
	}
	if len(list.Words) == 0 {
		return fmt.Errorf("%w: category %q has no words", ErrInvalidList, list.Name)
	}

	seen := make(map[string]bool, len(list.Words))
	for _, word := range list.Words {
		if !uppercaseOnly(word) {
			return fmt.Errorf("%w: word %q must be uppercase A-Z", ErrInvalidList, word)
		}
		if seen[word] {
			return fmt.Errorf("%w: duplicate word %q", ErrInvalidList, word)
		}
		seen[word] = true
	}

	return nil
}

// WordFor returns a uniformly random word from the named category
func (b *Bank) WordFor(category string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	list, ok := b.categories[category]
	if !ok || len(list) == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	return list[rand.Intn(len(list))], nil
}

// Words returns the full word list for a category
func (b *Bank) Words(category string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	list, ok := b.categories[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	return append([]string(nil), list...), nil
}

// Categories returns all category names in sorted order
func (b *Bank) Categories() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.categories))
	for name := range b.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func uppercaseOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
