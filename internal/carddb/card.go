package carddb

// Card is one card object as returned by the search API. Only the fields
// the database stores are decoded; everything else in the payload is
// ignored.
type Card struct {
	Name       string    `json:"name"`
	ManaCost   string    `json:"mana_cost"`
	CMC        float64   `json:"cmc"`
	TypeLine   string    `json:"type_line"`
	OracleText string    `json:"oracle_text"`
	FlavorText string    `json:"flavor_text"`
	Power      string    `json:"power"`
	Toughness  string    `json:"toughness"`
	Colors     []string  `json:"colors"`
	Artist     string    `json:"artist"`
	Rarity     string    `json:"rarity"`
	Layout     string    `json:"layout"`
	Set        string    `json:"set"`
	SetName    string    `json:"set_name"`
	ReleasedAt string    `json:"released_at"`
	ImageURIs  ImageURIs `json:"image_uris"`
}

// ImageURIs is the subset of image links worth keeping.
type ImageURIs struct {
	Normal string `json:"normal"`
}

// ImageURL returns the normal-size image link, or "" when the card has
// none (multi-face cards carry images per face, which we do not store).
func (c Card) ImageURL() string {
	return c.ImageURIs.Normal
}
