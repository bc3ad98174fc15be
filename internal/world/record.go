package world

import (
	"fmt"
	"strconv"
	"strings"
)

// recordSep is the reserved record delimiter. It may not appear inside any
// field value; there is no escaping.
const recordSep = "#"

func joinRecord(fields []string) (string, error) {
	for i, f := range fields {
		if strings.Contains(f, recordSep) {
			return "", fmt.Errorf("field %d %q: %w", i, f, ErrFieldText)
		}
	}
	return strings.Join(fields, recordSep), nil
}

func splitRecord(kind, record string, arity int) ([]string, error) {
	fields := strings.Split(record, recordSep)
	if len(fields) != arity {
		return nil, &FormatError{
			Kind:   kind,
			Reason: fmt.Sprintf("expected %d fields, got %d", arity, len(fields)),
		}
	}
	return fields, nil
}

func parseRef(kind, field, value string) (Ref, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FormatError{Kind: kind, Reason: fmt.Sprintf("%s %q is not a number", field, value)}
	}
	return Ref(n), nil
}

func parseOrdinal(kind, field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FormatError{Kind: kind, Reason: fmt.Sprintf("%s %q is not a number", field, value)}
	}
	return n, nil
}

// baseArity is the number of leading fields shared by every variant:
// id#name#flags#description#location.
const baseArity = 5

func (e *Entity) recordFields() []string {
	return []string{
		strconv.Itoa(int(e.Id)),
		e.Name,
		e.Flags.String(),
		e.Description,
		strconv.Itoa(int(e.Location)),
	}
}

func parseEntityFields(kind string, fields []string) (Entity, error) {
	id, err := parseRef(kind, "id", fields[0])
	if err != nil {
		return Entity{}, err
	}
	loc, err := parseRef(kind, "location", fields[4])
	if err != nil {
		return Entity{}, err
	}
	return Entity{
		Id:          id,
		Name:        fields[1],
		Flags:       ParseFlags(fields[2]),
		Description: fields[3],
		Location:    loc,
	}, nil
}

// ParseObject decodes a record of the given kind. It is the inverse of
// Object.Record for every persisted field.
func ParseObject(k Kind, record string) (Object, error) {
	switch k {
	case KindRoom:
		return ParseRoom(record)
	case KindExit:
		return ParseExit(record)
	case KindItem:
		return ParseItem(record)
	case KindPlayer:
		return ParsePlayer(record)
	case KindThing:
		return ParseThing(record)
	default:
		return nil, &FormatError{Kind: k.String(), Reason: "unknown kind"}
	}
}
