package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW     int
	FooterH    int
	FullFooter bool
	PromptLine string
	StatusLine string
	HelpLine   string
	VAlign     lipgloss.Position
	Bg         lipgloss.Color
}

// RenderFooter renders prompt, status, and help lines.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}

	var s string
	if state.FullFooter {
		s += state.PromptLine + "\n"
		s += state.StatusLine + "\n"
		s += state.HelpLine
	} else {
		s += state.StatusLine + "\n"
		s += state.HelpLine
	}

	return PlaceBox(state.InnerW, state.FooterH, state.VAlign, s, state.Bg)
}

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW           int
	FooterH          int
	FullFooter       bool
	StatusText       string
	HelpText         string
	PromptLines      []string
	PromptMax        int
	PromptFocus      bool
	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	PromptStyle      lipgloss.Style
	PromptFocusStyle lipgloss.Style
	VAlign           lipgloss.Position
	Bg               lipgloss.Color
}

// RenderFooterModel builds footer lines and renders the footer.
func RenderFooterModel(model FooterModel) string {
	statusLine := footerLine(model.InnerW, model.StatusStyle, model.StatusText)
	helpLine := footerLine(model.InnerW, model.HelpStyle, model.HelpText)

	promptStyle := model.PromptStyle
	if model.PromptFocus {
		promptStyle = model.PromptFocusStyle
	}
	promptLine := RenderPrompt(model.InnerW, promptStyle, model.PromptLines)
	if len(model.PromptLines) == 0 {
		promptLine = RenderPromptPlaceholder(model.InnerW, model.PromptStyle, model.PromptMax)
	}

	return RenderFooter(FooterViewState{
		InnerW:     model.InnerW,
		FooterH:    model.FooterH,
		FullFooter: model.FullFooter,
		PromptLine: promptLine,
		StatusLine: statusLine,
		HelpLine:   helpLine,
		VAlign:     model.VAlign,
		Bg:         model.Bg,
	})
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
