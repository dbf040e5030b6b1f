// Package wire converts local records to and from the remote table store's
// attribute representation. The codecs are pure and deterministic: optional
// fields are omitted from outgoing items when absent and decoded as absent
// when missing, and numeric fields travel as decimal strings so currency
// values round-trip exactly.
package wire

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is one remote table row: attribute name to tagged value.
type Item = map[string]types.AttributeValue

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func num(v string) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: v}
}

func boolean(v bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: v}
}

func getS(item Item, name string) (string, error) {
	av, ok := item[name]
	if !ok {
		return "", fmt.Errorf("attribute %q missing", name)
	}
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("attribute %q is not a string", name)
	}
	return s.Value, nil
}

func getN(item Item, name string) (string, error) {
	av, ok := item[name]
	if !ok {
		return "", fmt.Errorf("attribute %q missing", name)
	}
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("attribute %q is not a number", name)
	}
	return n.Value, nil
}

func getInt(item Item, name string) (int, error) {
	raw, err := getN(item, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	return n, nil
}

func getBool(item Item, name string) (bool, error) {
	av, ok := item[name]
	if !ok {
		return false, fmt.Errorf("attribute %q missing", name)
	}
	b, ok := av.(*types.AttributeValueMemberBOOL)
	if !ok {
		return false, fmt.Errorf("attribute %q is not a boolean", name)
	}
	return b.Value, nil
}
