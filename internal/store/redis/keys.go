package redis

const (
	// KeyPrefixContact is the prefix for stored contact messages
	KeyPrefixContact = "folio:contact:"
	// KeyContactOutbox lists contact message IDs, newest first
	KeyContactOutbox = "folio:contact:outbox"
)

// ContactKey returns the Redis key for a contact message
func ContactKey(id string) string {
	return KeyPrefixContact + id
}

// ContactOutboxKey returns the Redis key for the outbox list
func ContactOutboxKey() string {
	return KeyContactOutbox
}
