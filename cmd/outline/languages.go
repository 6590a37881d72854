package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner/lang"
)

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and how each is detected",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Indic (script-based detection):")
			for _, code := range lang.Indic() {
				fmt.Printf("  %-3s %s\n", code, lang.Name(code))
			}
			fmt.Println("\nInternational:")
			for _, code := range lang.International() {
				fmt.Printf("  %-3s %s\n", code, lang.Name(code))
			}
			fmt.Printf("\nDefault fallback: %s (%s)\n", lang.Default, lang.Name(lang.Default))
		},
	}
}
