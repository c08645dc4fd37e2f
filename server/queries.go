package main

// SampleQuery is a canned query shown on the console page.
type SampleQuery struct {
	Name string `json:"name"`
	SQL  string `json:"sql"`
}

// sampleQueries covers the common joins so the schema is discoverable
// without writing SQL from scratch. Each one passes the validator as-is.
var sampleQueries = []SampleQuery{
	{
		Name: "First 50 cards",
		SQL:  `SELECT CardID, CardName, ManaCost, ConvertedManaCost FROM Card ORDER BY CardID LIMIT 50`,
	},
	{
		Name: "Cards with set code and rarity",
		SQL: `SELECT c.CardName, s.SetCode, r.RarityName
FROM Card c
JOIN CardSet s ON c.SetID = s.SetID
JOIN Rarity r ON c.RarityID = r.RarityID
ORDER BY c.CardName
LIMIT 50`,
	},
	{
		Name: "Blue creature cards",
		SQL: `SELECT DISTINCT c.CardName
FROM Card c
JOIN Card_CardType cct ON c.CardID = cct.CardID
JOIN CardType ct ON cct.CardTypeID = ct.CardTypeID
JOIN Card_Color cc ON c.CardID = cc.CardID
JOIN Color col ON cc.ColorID = col.ColorID
WHERE ct.TypeName = 'Creature' AND col.Color = 'U'
ORDER BY c.CardName
LIMIT 50`,
	},
	{
		Name: "Legendary cards by set",
		SQL: `SELECT s.SetCode, COUNT(*) AS legendary_count
FROM Card c
JOIN CardSet s ON c.SetID = s.SetID
WHERE c.SuperType = 'Legendary'
GROUP BY s.SetCode
ORDER BY legendary_count DESC`,
	},
	{
		Name: "Latest ingest runs",
		SQL: `SELECT SetCode, CardsFetched, CardsInserted, StartedAt, FinishedAt
FROM IngestLog
ORDER BY RunID DESC
LIMIT 20`,
	},
}
