package console

import "strconv"

// maxChoices is the ceiling imposed by the single-digit base-36 selector
// scheme.
const maxChoices = 36

// choiceID converts a 1-indexed option position to its base-36 identifier:
// positions 1-9 map to "1"-"9", positions 10-35 to "a"-"z". The identifier
// is both the user-visible selector and the persisted answer encoding, so
// stored answer files stay stable across runs only as long as option order
// is stable.
func choiceID(pos int) string {
	return strconv.FormatInt(int64(pos), 36)
}

// choicePos decodes a base-36 identifier back to its 1-indexed position.
// Identifiers are case-folded, so "B" decodes like "b".
func choicePos(id string) (int, error) {
	pos, err := strconv.ParseInt(id, 36, 32)
	if err != nil {
		return 0, err
	}
	return int(pos), nil
}
