// Package words provides the word bank for multiplayer hangman.
//
// The words package handles:
//   - Built-in word categories shipped with the server
//   - Loading additional category files from a words directory
//   - Uniformly random word selection for a chosen category
//   - Word list validation (uppercase A-Z, no duplicates)
//
// Word List Format:
//
// Category files are stored as JSON files in the words directory. Each file
// defines one category:
//
//	{
//	  "name": "Fruits",
//	  "words": ["APPLE", "BANANA", "ORANGE"]
//	}
//
// Files override a built-in category of the same name. Words must consist
// solely of uppercase letters; repeats across games are allowed, selection
// carries no memory.
//
// Usage:
//
//	bank := words.NewBank()
//
//	// Or with a custom directory layered on top of the built-ins
//	bank, err := words.NewBankFromDir("words")
//
//	word, err := bank.WordFor("Fruits")
//	categories := bank.Categories()
package words
