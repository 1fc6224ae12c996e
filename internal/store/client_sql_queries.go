// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	insertLocalTransaction = `
		INSERT INTO transactions (
			local_id,
			product_name,
			amount,
			quantity,
			payment_type,
			timestamp,
			synced
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	selectLocalTransactions = `
		SELECT local_id, product_name, amount, quantity, payment_type, timestamp, synced
		FROM transactions
		ORDER BY timestamp DESC, rowid DESC;`

	selectUnsyncedLocalTransactions = `
		SELECT local_id, product_name, amount, quantity, payment_type, timestamp, synced
		FROM transactions
		WHERE synced = 0
		ORDER BY rowid ASC;`

	markLocalTransactionSynced = `
		UPDATE transactions SET synced = 1
		WHERE local_id = ? AND synced = 0;`

	deleteLocalTransaction = `DELETE FROM transactions WHERE local_id = ?;`

	countUnsyncedLocalTransactions = `SELECT COUNT(*) FROM transactions WHERE synced = 0;`

	selectSetting = `SELECT value FROM settings WHERE key = ?;`

	insertSettingIfAbsent = `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO NOTHING;`
)
