package entities

import "encoding/json"

type LabelSize string

const (
	LabelSizeA4 LabelSize = "A4"
	LabelSize4R LabelSize = "4R"
)

type LabelOptions struct {
	PDF  bool
	Size LabelSize
}

// Label либо PDF (Document + DownloadURL), либо сырые данные для печати (Data).
type Label struct {
	Waybill     string
	DownloadURL string
	Document    []byte
	Data        json.RawMessage
}
