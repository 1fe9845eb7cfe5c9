// Package render maps a report onto the declarative result view.
package render

import (
	"net/url"
	"strings"

	"certidao-widget/internal/domain"
)

// Placeholders shown when a collection field is missing or malformed.
const (
	OwnersNotFound   = "Proprietários: Não encontrado"
	EncumbrancesNone = "Ônus Reais: Nenhum"
)

type scalarSlot struct {
	slot  string
	label string
	field string
}

var scalarSlots = []scalarSlot{
	{domain.SlotRegistryOffice, "Cartório", domain.FieldRegistryOffice},
	{domain.SlotSearchDate, "Data da Busca", domain.FieldSearchDate},
	{domain.SlotCertificateDate, "Data da Certidão", domain.FieldCertificateDate},
	{domain.SlotDiagnosis, "Diagnóstico", domain.FieldDiagnosis},
	{domain.SlotAddress, "Endereço", domain.FieldAddress},
	{domain.SlotIdealFraction, "Fração Ideal", domain.FieldIdealFraction},
	{domain.SlotRegistration, "Matrícula", domain.FieldRegistration},
}

// Renderer builds views. BaseURL prefixes the download reference; empty
// keeps it relative to the page origin.
type Renderer struct {
	BaseURL string
}

// NewRenderer creates a renderer for reports served from baseURL
func NewRenderer(baseURL string) *Renderer {
	return &Renderer{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Render maps report and the server-issued filename to a view. It never
// fails: absent or malformed fields fall back to placeholders.
func (r *Renderer) Render(report domain.Report, filename string) *domain.View {
	view := &domain.View{
		Cards: make([]domain.Card, 0, len(scalarSlots)+2),
	}

	for _, s := range scalarSlots {
		view.Cards = append(view.Cards, domain.Card{
			Slot: s.slot,
			Text: s.label + ": " + domain.FieldText(report[s.field]),
		})
	}

	view.Cards = append(view.Cards,
		domain.Card{Slot: domain.SlotOwners, Text: ownersText(report[domain.FieldOwners])},
		domain.Card{Slot: domain.SlotEncumbrances, Text: encumbrancesText(report[domain.FieldEncumbrances])},
	)

	view.Download = domain.DownloadLink{
		Href:   r.BaseURL + "/download/" + url.PathEscape(filename),
		SaveAs: filename,
	}
	return view
}

// Owners extracts the owner records from a report. ok is false when the
// field is absent or not a list.
func Owners(report domain.Report) (owners []domain.Owner, ok bool) {
	items, ok := report[domain.FieldOwners].([]any)
	if !ok {
		return nil, false
	}
	owners = make([]domain.Owner, 0, len(items))
	for _, item := range items {
		var o domain.Owner
		if m, isMap := item.(map[string]any); isMap {
			o.Name = domain.ItemText(m[domain.FieldOwnerName])
		}
		owners = append(owners, o)
	}
	return owners, true
}

func ownersText(v any) string {
	owners, ok := Owners(domain.Report{domain.FieldOwners: v})
	if !ok {
		return OwnersNotFound
	}
	lines := make([]string, 0, len(owners)+1)
	lines = append(lines, "Proprietários:")
	for _, o := range owners {
		lines = append(lines, "- "+o.Name)
	}
	return strings.Join(lines, "\n")
}

func encumbrancesText(v any) string {
	items, ok := v.([]any)
	if !ok {
		return EncumbrancesNone
	}
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, "Ônus Reais:")
	for _, item := range items {
		lines = append(lines, domain.ItemText(item))
	}
	return strings.Join(lines, "\n")
}

// Text concatenates the card texts, each followed by a blank line, the way
// the copy action assembles the clipboard content.
func Text(view *domain.View) string {
	if view == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range view.Cards {
		b.WriteString(c.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}
