package postgre

import (
	"context"

	"github.com/lib/pq"

	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/internal/model"
)

// ListRecipients loads roster entries. Contact numbers are stored encrypted;
// entries that fail decryption are skipped rather than failing the read.
func (r *implRepository) ListRecipients(ctx context.Context, opt repository.ListRecipientsOptions) ([]model.Recipient, error) {
	query := `
		SELECT id, name, contact_encrypted, role, location
		FROM alerting.recipients
	`
	args := []interface{}{}

	if len(opt.Roles) > 0 {
		query += " WHERE role = ANY($1)"
		args = append(args, pq.Array(opt.Roles))
	}

	query += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.ListRecipients: query failed: %v", err)
		return nil, repository.ErrListRecipientsFailed
	}
	defer rows.Close()

	var recipients []model.Recipient
	for rows.Next() {
		var rec model.Recipient
		var contactEncrypted string

		if err := rows.Scan(&rec.ID, &rec.Name, &contactEncrypted, &rec.Role, &rec.Location); err != nil {
			r.l.Errorf(ctx, "alert.repository.postgre.ListRecipients: scan failed: %v", err)
			return nil, repository.ErrListRecipientsFailed
		}

		contact, err := r.encrypter.Decrypt(contactEncrypted)
		if err != nil {
			r.l.Warnf(ctx, "alert.repository.postgre.ListRecipients: skipping recipient %s, decrypt failed: %v", rec.ID, err)
			continue
		}
		rec.Contact = contact

		recipients = append(recipients, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.ListRecipients: rows failed: %v", err)
		return nil, repository.ErrListRecipientsFailed
	}

	return recipients, nil
}

// UpsertRecipient writes one roster entry, encrypting the contact at rest.
// Used by roster seeding, not by dispatch.
func (r *implRepository) UpsertRecipient(ctx context.Context, rec model.Recipient) error {
	contactEncrypted, err := r.encrypter.Encrypt(rec.Contact)
	if err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.UpsertRecipient: encrypt failed: %v", err)
		return repository.ErrUpsertRecipientFailed
	}

	query := `
		INSERT INTO alerting.recipients (id, name, contact_encrypted, role, location)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    contact_encrypted = EXCLUDED.contact_encrypted,
		    role = EXCLUDED.role,
		    location = EXCLUDED.location
	`

	if _, err := r.db.ExecContext(ctx, query, rec.ID, rec.Name, contactEncrypted, rec.Role, rec.Location); err != nil {
		r.l.Errorf(ctx, "alert.repository.postgre.UpsertRecipient: exec failed: %v", err)
		return repository.ErrUpsertRecipientFailed
	}
	return nil
}
