package handlers

import "notebridge/internal/tools"

func idParam(description string) tools.Param {
	return tools.Param{Name: "id", Type: "string", Required: true, Description: description}
}

func markdownParam(required bool) tools.Param {
	return tools.Param{Name: "markdown", Type: "string", Required: required, Description: "Markdown content"}
}
