package store

const createSavesTable = `
CREATE TABLE IF NOT EXISTS saves (
  name varchar primary key,
  saved datetime not null,
  pieces int not null,
  body blob not null
)`

const insertSave = `
INSERT INTO saves (name, saved, pieces, body)
VALUES (:name, :saved, :pieces, :body)
`

const selectNames = `SELECT name FROM saves ORDER BY name`

const selectBody = `SELECT body FROM saves WHERE name = ?`

const countName = `SELECT COUNT(*) FROM saves WHERE name = ?`
