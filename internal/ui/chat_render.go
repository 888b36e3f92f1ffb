package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/zhubert/chatter/internal/session"
)

const emptyLogText = "No messages yet. Type below, then press shift+enter or ctrl+s to send."

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// renderBody renders a message body. Fenced code blocks are highlighted,
// everything else is wrapped to width.
func renderBody(body string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var out []string
	var text []string
	var code strings.Builder
	inCode := false
	lang := ""

	flushText := func() {
		if len(text) == 0 {
			return
		}
		out = append(out, ChatMessageStyle.Width(width).Render(strings.Join(text, "\n")))
		text = text[:0]
	}
	flushCode := func() {
		out = append(out, CodeBlockStyle.Render(highlightCode(code.String(), lang)))
		code.Reset()
		lang = ""
	}

	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inCode {
				flushText()
				inCode = true
				lang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
			} else {
				inCode = false
				flushCode()
			}
			continue
		}

		if inCode {
			if code.Len() > 0 {
				code.WriteString("\n")
			}
			code.WriteString(line)
			continue
		}
		text = append(text, line)
	}

	// An unterminated fence still renders as code
	if inCode {
		flushCode()
	}
	flushText()

	return strings.Join(out, "\n")
}

// renderMessage renders the "<sequence> <author>" label followed by the body.
func renderMessage(msg session.Message, width int) string {
	return ChatLabelStyle.Render(msg.Label()) + "\n" + renderBody(msg.Body, width)
}

// RenderMessages renders the whole log for the viewport.
func RenderMessages(messages []session.Message, width int) string {
	if len(messages) == 0 {
		return ChatPlaceholderStyle.Render(emptyLogText)
	}

	parts := make([]string, len(messages))
	for i, msg := range messages {
		parts[i] = renderMessage(msg, width)
	}
	return strings.Join(parts, "\n\n")
}
