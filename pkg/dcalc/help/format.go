package help

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatText formats a TopicResult for terminal output
func FormatText(result *TopicResult) string {
	var sb strings.Builder

	switch result.Kind {
	case "function", "constant":
		formatNameText(&sb, result)
	case "operator":
		fmt.Fprintf(&sb, "Operator: %s (%s)\n\n%s\n", result.Name, result.Category, result.Description)
		if result.Example != "" {
			fmt.Fprintf(&sb, "\nRead as: %s\n", result.Example)
		}
	case "command":
		fmt.Fprintf(&sb, "Usage: %s\n\n%s\n", result.Example, result.Description)
	case "function-list":
		formatEntryListText(&sb, "Functions", result.Functions)
	case "constant-list":
		formatEntryListText(&sb, "Constants", result.Constants)
	case "operator-list":
		formatOperatorListText(&sb, result.Operators)
	case "command-list":
		formatCommandListText(&sb, result.Commands)
	default:
		fmt.Fprintf(&sb, "Unknown result kind: %s\n", result.Kind)
	}

	return sb.String()
}

// FormatJSON formats a TopicResult as JSON
func FormatJSON(result *TopicResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func formatNameText(sb *strings.Builder, result *TopicResult) {
	if result.Kind == "constant" {
		fmt.Fprintf(sb, "Constant: %s\n", result.Name)
	} else {
		fmt.Fprintf(sb, "Function: %s(%s)\n", result.Name, strings.Join(result.Params, ", "))
	}
	if result.Category != "" {
		fmt.Fprintf(sb, "Category: %s\n", result.Category)
	}
	if result.Description != "" {
		fmt.Fprintf(sb, "\n%s\n", result.Description)
	}
	if result.Domain != "" {
		fmt.Fprintf(sb, "\nDomain: %s\n", result.Domain)
	}
	if result.Example != "" {
		fmt.Fprintf(sb, "Example: %s\n", result.Example)
	}
}

func signature(e EntryInfo) string {
	if len(e.Params) == 0 {
		return e.Name
	}
	return e.Name + "(" + strings.Join(e.Params, ", ") + ")"
}

func formatEntryListText(sb *strings.Builder, title string, list []EntryInfo) {
	sb.WriteString(title + ":\n")

	maxLen := 0
	for _, e := range list {
		maxLen = max(maxLen, len(signature(e)))
	}

	category := ""
	for _, e := range list {
		if e.Category != category {
			category = e.Category
			fmt.Fprintf(sb, "\n  %s\n", strings.ToUpper(category[:1])+category[1:])
		}
		display := signature(e)
		padding := strings.Repeat(" ", maxLen-len(display)+2)
		fmt.Fprintf(sb, "    %s%s%s\n", display, padding, e.Description)
	}
}

func formatOperatorListText(sb *strings.Builder, ops []OperatorInfo) {
	sb.WriteString("Operators:\n\n")
	for _, op := range ops {
		line := fmt.Sprintf("  %-4s %s", op.Symbol, op.Description)
		if op.Rewrite != "" {
			line += " (" + op.Rewrite + ")"
		}
		sb.WriteString(line + "\n")
	}
}

func formatCommandListText(sb *strings.Builder, cmds []CommandInfo) {
	sb.WriteString("Commands:\n\n")

	maxLen := 0
	for _, c := range cmds {
		maxLen = max(maxLen, len(c.Usage))
	}
	for _, c := range cmds {
		padding := strings.Repeat(" ", maxLen-len(c.Usage)+2)
		fmt.Fprintf(sb, "  %s%s%s\n", c.Usage, padding, c.Description)
	}
}
