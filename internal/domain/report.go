package domain

// Report field names as sent by the report server.
const (
	FieldRegistryOffice  = "Cartório"
	FieldSearchDate      = "Data da Busca"
	FieldCertificateDate = "Data da Certidão"
	FieldDiagnosis       = "Diagnóstico"
	FieldAddress         = "Endereço"
	FieldIdealFraction   = "Fração Ideal"
	FieldRegistration    = "Matrícula"
	FieldOwners          = "Proprietários"
	FieldEncumbrances    = "Ônus Reais"
	FieldOwnerName       = "nome"
)

// Report is the structured payload describing the extracted certificate
// fields. It stays a loose map: any field may be absent or carry an
// unexpected shape, and rendering must tolerate both.
type Report map[string]any

// UploadResult is the success body of POST /upload.
type UploadResult struct {
	Report     Report `json:"relatorio"`
	ReportFile string `json:"arquivo_relatorio"`
}

// Owner is one entry of the owners list.
type Owner struct {
	Name string `json:"nome"`
}
