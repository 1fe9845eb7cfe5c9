package widget

// User-facing texts.
const (
	DefaultDropZoneLabel = "Arraste o PDF aqui ou clique para selecionar"

	AlertNotPDF        = "Por favor, envie um arquivo PDF."
	AlertProcessing    = "Erro ao processar o arquivo."
	AlertCommunication = "Erro na comunicação com o servidor."
	AlertCopied        = "Relatório copiado para a área de transferência!"
)
