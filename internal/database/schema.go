package database

// The journal's document heritage shows here: target ranges, tags and
// the settings record live as JSONB rather than flattened columns, so
// the stored shape matches the core types' JSON form exactly.
//
// There are deliberately no foreign key constraints: referential
// integrity is enforced at the deletion boundary (DeleteGrow cascades
// in one transaction), not at the storage layer, and imports replace
// every collection wholesale.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS grows (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	species    TEXT NOT NULL DEFAULT '',
	method     TEXT NOT NULL DEFAULT '',
	substrate  TEXT NOT NULL DEFAULT '',
	start_date TIMESTAMPTZ NOT NULL,
	phase      TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'active',
	targets    JSONB NOT NULL DEFAULT '{}'::jsonb,
	tags       JSONB NOT NULL DEFAULT '[]'::jsonb,
	notes      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS logs (
	id                TEXT PRIMARY KEY,
	grow_id           TEXT NOT NULL,
	logged_at         TIMESTAMPTZ NOT NULL,
	temp              DOUBLE PRECISION,
	humidity          DOUBLE PRECISION,
	co2               DOUBLE PRECISION,
	fae               TEXT NOT NULL DEFAULT '',
	light_hours       DOUBLE PRECISION,
	surface_condition TEXT NOT NULL DEFAULT '',
	block             TEXT NOT NULL DEFAULT '',
	treatment         TEXT NOT NULL DEFAULT '',
	growth_mm_per_day DOUBLE PRECISION,
	flush_height_mm   DOUBLE PRECISION,
	notes             TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS logs_grow_idx ON logs (grow_id, logged_at);

CREATE TABLE IF NOT EXISTS events (
	id        TEXT PRIMARY KEY,
	grow_id   TEXT NOT NULL,
	logged_at TIMESTAMPTZ NOT NULL,
	type      TEXT NOT NULL DEFAULT 'other',
	severity  TEXT NOT NULL DEFAULT 'info',
	notes     TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS events_grow_idx ON events (grow_id, logged_at);

CREATE TABLE IF NOT EXISTS harvests (
	id           TEXT PRIMARY KEY,
	grow_id      TEXT NOT NULL,
	harvested_on TIMESTAMPTZ NOT NULL,
	flush_number INTEGER NOT NULL DEFAULT 1,
	weight       DOUBLE PRECISION,
	quality      TEXT NOT NULL DEFAULT '',
	notes        TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS harvests_grow_idx ON harvests (grow_id, harvested_on);

CREATE TABLE IF NOT EXISTS settings (
	id   SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	data JSONB NOT NULL
);
`
