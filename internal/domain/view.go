package domain

// Card slot identifiers, in display order.
const (
	SlotRegistryOffice  = "cartorio"
	SlotSearchDate      = "dataBusca"
	SlotCertificateDate = "dataCertidao"
	SlotDiagnosis       = "diagnostico"
	SlotAddress         = "endereco"
	SlotIdealFraction   = "fracaoIdeal"
	SlotRegistration    = "matricula"
	SlotOwners          = "proprietarios"
	SlotEncumbrances    = "onusReais"
)

// Card is one rendered result slot.
type Card struct {
	Slot string `json:"slot"`
	Text string `json:"text"`
}

// DownloadLink is the navigable reference to the generated report artifact.
type DownloadLink struct {
	Href   string `json:"href"`
	SaveAs string `json:"download"`
}

// View is the declarative description of the result panel. A UI binding
// maps each card onto a concrete widget.
type View struct {
	Cards    []Card       `json:"cards"`
	Download DownloadLink `json:"download"`
}

// Card returns the card for slot, if present.
func (v *View) Card(slot string) (Card, bool) {
	if v == nil {
		return Card{}, false
	}
	for _, c := range v.Cards {
		if c.Slot == slot {
			return c, true
		}
	}
	return Card{}, false
}

// Alert is a blocking user notification raised by the widget.
type Alert struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ViewState is a snapshot of everything a UI binding needs to draw the
// widget.
type ViewState struct {
	SelectedFile   string `json:"selected_file,omitempty"`
	DropZoneLabel  string `json:"drop_zone_label"`
	DragActive     bool   `json:"drag_active"`
	DropZoneLocked bool   `json:"drop_zone_locked"`
	SubmitEnabled  bool   `json:"submit_enabled"`
	Loading        bool   `json:"loading"`
	ResultVisible  bool   `json:"result_visible"`
	Result         *View  `json:"result,omitempty"`
}
