package dispatch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// SuccessText is returned for handlers that complete without output.
const SuccessText = "Success"

// errorPrefix is prepended to every failure message.
const errorPrefix = "Error: "

// NormalizeResult converts a handler result into the text sent to callers.
func NormalizeResult(v interface{}) (string, error) {
	switch r := v.(type) {
	case nil:
		return SuccessText, nil
	case string:
		return r, nil
	default:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to serialize result: %w", err)
		}
		return string(data), nil
	}
}

func successEnvelope(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
		IsError: false,
	}
}

func errorEnvelope(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(errorPrefix + message)},
		IsError: true,
	}
}

// ResultText returns the text of the first content item of a result, or ""
// when there is none.
func ResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	if tc, ok := mcp.AsTextContent(result.Content[0]); ok {
		return tc.Text
	}
	return ""
}

// PromptText joins the text of every message in a prompt result.
func PromptText(result *mcp.GetPromptResult) string {
	if result == nil {
		return ""
	}
	var parts []string
	for _, msg := range result.Messages {
		if tc, ok := mcp.AsTextContent(msg.Content); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
