package corvid

// CheckInvariants exposes Board.checkInvariants to external tests.
func CheckInvariants(b *Board) error { return b.checkInvariants() }

// CorruptHashForTest deliberately desyncs b's incremental hash, for tests
// that verify checkInvariants notices.
func CorruptHashForTest(b *Board) { b.hash ^= 1 }
