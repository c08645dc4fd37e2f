package carddb

import (
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// createTables applies the full schema. Every statement is IF NOT EXISTS so
// reopening an existing database extends it instead of failing.
func createTables(conn *sqlite.Conn) error {
	ddl := `
CREATE TABLE IF NOT EXISTS Artist (
    ArtistID   INTEGER PRIMARY KEY,
    ArtistName TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS Rarity (
    RarityID   INTEGER PRIMARY KEY,
    RarityName TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS CardSet (
    SetID       INTEGER PRIMARY KEY,
    SetName     TEXT NOT NULL,
    SetCode     TEXT NOT NULL UNIQUE,
    ReleaseDate TEXT
);

CREATE TABLE IF NOT EXISTS Color (
    ColorID INTEGER PRIMARY KEY,
    Color   TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS CardType (
    CardTypeID INTEGER PRIMARY KEY,
    TypeName   TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS SubType (
    SubTypeID   INTEGER PRIMARY KEY,
    SubTypeName TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS Card (
    CardID            INTEGER PRIMARY KEY,
    CardName          TEXT NOT NULL,
    ManaCost          TEXT,
    ConvertedManaCost REAL,
    Abilities         TEXT,
    FlavorText        TEXT,
    Power             TEXT,
    Toughness         TEXT,
    ImageURL          TEXT,
    Layout            TEXT,
    SuperType         TEXT,
    ArtistID          INTEGER NOT NULL REFERENCES Artist(ArtistID),
    RarityID          INTEGER NOT NULL REFERENCES Rarity(RarityID),
    SetID             INTEGER NOT NULL REFERENCES CardSet(SetID)
);

CREATE TABLE IF NOT EXISTS Card_Color (
    CardID  INTEGER NOT NULL REFERENCES Card(CardID),
    ColorID INTEGER NOT NULL REFERENCES Color(ColorID),
    PRIMARY KEY (CardID, ColorID)
);

CREATE TABLE IF NOT EXISTS Card_CardType (
    CardID     INTEGER NOT NULL REFERENCES Card(CardID),
    CardTypeID INTEGER NOT NULL REFERENCES CardType(CardTypeID),
    PRIMARY KEY (CardID, CardTypeID)
);

CREATE TABLE IF NOT EXISTS Card_SubType (
    CardID    INTEGER NOT NULL REFERENCES Card(CardID),
    SubTypeID INTEGER NOT NULL REFERENCES SubType(SubTypeID),
    PRIMARY KEY (CardID, SubTypeID)
);

CREATE TABLE IF NOT EXISTS IngestLog (
    RunID         INTEGER PRIMARY KEY,
    SetCode       TEXT NOT NULL,
    CardsFetched  INTEGER NOT NULL,
    CardsInserted INTEGER NOT NULL,
    StartedAt     TEXT NOT NULL,
    FinishedAt    TEXT NOT NULL
);
`
	return sqlitex.ExecuteScript(conn, ddl, nil)
}

// createIndexes builds the lookup-side indexes the console queries lean on.
func createIndexes(conn *sqlite.Conn) error {
	indexes := `
CREATE INDEX IF NOT EXISTS idx_card_name ON Card(CardName);
CREATE INDEX IF NOT EXISTS idx_card_set ON Card(SetID);
CREATE INDEX IF NOT EXISTS idx_card_artist ON Card(ArtistID);
CREATE INDEX IF NOT EXISTS idx_card_rarity ON Card(RarityID);
CREATE INDEX IF NOT EXISTS idx_card_color_color ON Card_Color(ColorID);
CREATE INDEX IF NOT EXISTS idx_card_cardtype_type ON Card_CardType(CardTypeID);
CREATE INDEX IF NOT EXISTS idx_card_subtype_subtype ON Card_SubType(SubTypeID);
`
	return sqlitex.ExecuteScript(conn, indexes, nil)
}
