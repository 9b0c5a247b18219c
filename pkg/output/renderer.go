package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/actdeck/pkg/actions"
	"github.com/arthur-debert/actdeck/pkg/errors"
	"github.com/arthur-debert/actdeck/pkg/logging"
	"github.com/arthur-debert/actdeck/pkg/output/styles"
)

// MsgNoActions is printed in place of an empty listing
const MsgNoActions = "No actions registered."

// Entry is the serialised form of a registered action
type Entry struct {
	ID                   int    `json:"id" yaml:"id" toml:"id"`
	Name                 string `json:"name" yaml:"name" toml:"name"`
	RequiresConfirmation bool   `json:"requires_confirmation" yaml:"requires_confirmation" toml:"requires_confirmation"`
}

// Listing is the document written by the structured formats
type Listing struct {
	Actions []Entry `json:"actions" yaml:"actions" toml:"actions"`
}

// NewListing converts actions into their serialised form, keeping order
func NewListing(list []*actions.Action) Listing {
	listing := Listing{Actions: make([]Entry, 0, len(list))}
	for _, action := range list {
		listing.Actions = append(listing.Actions, Entry{
			ID:                   action.ID(),
			Name:                 action.Name(),
			RequiresConfirmation: action.RequiresConfirmation(),
		})
	}
	return listing
}

// Renderer writes action listings and messages in one format
type Renderer struct {
	writer io.Writer
	format Format
}

// NewRenderer creates a renderer. FormatAuto must be resolved by the
// caller; it is treated as plain text here.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
	}
	logger := logging.GetLogger("output")
	logger.Debug().
		Str("format", format.String()).
		Msg("Creating renderer")
	return &Renderer{writer: w, format: format}
}

// Format returns the renderer's output format
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes list to w in the given format
func Render(w io.Writer, list []*actions.Action, format Format) error {
	return NewRenderer(w, format).Render(list)
}

// Render writes the action listing
func (r *Renderer) Render(list []*actions.Action) error {
	listing := NewListing(list)

	switch r.format {
	case FormatTerminal:
		return r.renderTerminal(listing)
	case FormatText:
		return r.renderText(listing)
	case FormatJSON:
		encoder := json.NewEncoder(r.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listing)
	case FormatYAML:
		encoder := yaml.NewEncoder(r.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(listing); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTOML:
		return toml.NewEncoder(r.writer).Encode(listing)
	case FormatXML:
		return r.renderXML(listing)
	default:
		return errors.Newf(errors.ErrOutputFormat, "cannot render format %s", r.format)
	}
}

func (r *Renderer) renderText(listing Listing) error {
	if len(listing.Actions) == 0 {
		_, err := fmt.Fprintln(r.writer, MsgNoActions)
		return err
	}

	var b strings.Builder
	for _, entry := range listing.Actions {
		fmt.Fprintf(&b, "%4d  %s", entry.ID, entry.Name)
		if entry.RequiresConfirmation {
			b.WriteString("  [confirm]")
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.writer, b.String())
	return err
}

func (r *Renderer) renderTerminal(listing Listing) error {
	if len(listing.Actions) == 0 {
		_, err := fmt.Fprintln(r.writer, styles.Render("NoContent", MsgNoActions))
		return err
	}

	var b strings.Builder
	b.WriteString(styles.Render("Title", "Actions"))
	b.WriteByte('\n')
	for _, entry := range listing.Actions {
		b.WriteString(styles.Render("ID", strconv.Itoa(entry.ID)))
		b.WriteString(styles.Render("Name", entry.Name))
		if entry.RequiresConfirmation {
			b.WriteString(styles.Render("Confirm", "(confirm)"))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.writer, b.String())
	return err
}

func (r *Renderer) renderXML(listing Listing) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("actions")
	root.CreateAttr("count", strconv.Itoa(len(listing.Actions)))
	for _, entry := range listing.Actions {
		el := root.CreateElement("action")
		el.CreateAttr("id", strconv.Itoa(entry.ID))
		el.CreateAttr("requires-confirmation", strconv.FormatBool(entry.RequiresConfirmation))
		el.SetText(entry.Name)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(r.writer)
	return err
}

// RenderError writes an error in the renderer's format
func (r *Renderer) RenderError(err error) error {
	switch r.format {
	case FormatJSON:
		return json.NewEncoder(r.writer).Encode(map[string]string{
			"error": err.Error(),
			"code":  string(errors.GetErrorCode(err)),
		})
	case FormatTerminal:
		_, werr := fmt.Fprintf(r.writer, "%s %s\n", styles.Render("Error", "Error:"), err)
		return werr
	default:
		_, werr := fmt.Fprintf(r.writer, "Error: %s\n", err)
		return werr
	}
}

// RenderMessage writes a message, styled with the named style on terminals
func (r *Renderer) RenderMessage(style, message string) error {
	switch r.format {
	case FormatJSON:
		return json.NewEncoder(r.writer).Encode(map[string]string{"message": message})
	case FormatTerminal:
		_, err := fmt.Fprintln(r.writer, styles.Render(style, message))
		return err
	default:
		_, err := fmt.Fprintln(r.writer, message)
		return err
	}
}
