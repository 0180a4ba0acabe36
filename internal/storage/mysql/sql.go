package mysql

const createDocumentsSQL = `
CREATE TABLE IF NOT EXISTS documents (
  name       VARCHAR(255) NOT NULL PRIMARY KEY,
  payload    LONGTEXT     NOT NULL,
  updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) DEFAULT CHARSET = utf8mb4
`

// Whole-document rewrite; the row for a name is created on first save.
const upsertDocumentSQL = `
INSERT INTO documents (name, payload)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  payload    = VALUES(payload),
  updated_at = CURRENT_TIMESTAMP
`

const getDocumentSQL = `SELECT payload FROM documents WHERE name = ?`
