package entities

const (
	CatalogID   = "tello"
	CatalogName = "Tello"

	// BlockTypeCommand is the only block kind: every block performs an action
	// and returns nothing.
	BlockTypeCommand = "command"
)

// Catalog is the locale-resolved block list a host renders.
type Catalog struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Locale       string  `json:"locale"`
	MenuIconURI  string  `json:"menuIconURI"`
	BlockIconURI string  `json:"blockIconURI"`
	Blocks       []Block `json:"blocks"`
}

// Block is one rendered operation.
type Block struct {
	Opcode    string               `json:"opcode"`
	Text      string               `json:"text"`
	Kind      string               `json:"blockType"`
	Arguments map[string]Parameter `json:"arguments,omitempty"`
}

// Block returns the block with the given opcode.
func (c Catalog) Block(opcode string) (Block, bool) {
	for _, b := range c.Blocks {
		if b.Opcode == opcode {
			return b, true
		}
	}
	return Block{}, false
}
