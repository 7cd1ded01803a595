package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mycelian/shopsearch/client"
	"github.com/mycelian/shopsearch/internal/config"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const maxTitleWidth = 60

func validateOutput(format string) error {
	switch format {
	case config.OutputJSON, config.OutputYAML, config.OutputTable:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want json, yaml or table)", format)
	}
}

// writeResult prints the decoded reply. Replies that are not a product
// listing cannot be shown as a table and fall back to JSON.
func writeResult(w io.Writer, resp *client.SearchResponse, format string) error {
	switch format {
	case config.OutputYAML:
		return writeYAML(w, resp.Value())
	case config.OutputTable:
		catalog, err := resp.Catalog()
		if err != nil {
			log.Debug().Err(err).Msg("reply is not a product listing; printing JSON")
			return writeJSON(w, resp.Value())
		}
		return writeTable(w, catalog)
	default:
		return writeJSON(w, resp.Value())
	}
}

func writeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plainNumbers(v)); err != nil {
		return err
	}
	return enc.Close()
}

// plainNumbers converts json.Number leaves to int64 or float64 so YAML
// renders them as numbers instead of quoted strings.
func plainNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plainNumbers(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainNumbers(e)
		}
		return out
	default:
		return v
	}
}

func writeTable(w io.Writer, c *client.Catalog) error {
	if c.Error != "" {
		_, err := fmt.Fprintf(w, "Error: %s\n", c.Error)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Source", "Title", "Price", "Link"})
	for i, p := range c.Products {
		t.AppendRow(table.Row{i + 1, p.Source, truncate(p.Title, maxTitleWidth), string(p.Price), p.Link})
	}
	t.AppendFooter(table.Row{"", "", "Total", c.Total, ""})
	if c.Query != "" {
		caption := fmt.Sprintf("query %q", c.Query)
		if c.ElapsedSeconds > 0 {
			caption += fmt.Sprintf(" in %.2fs", c.ElapsedSeconds)
		}
		t.SetCaption("%s", caption)
	}
	t.Render()
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
