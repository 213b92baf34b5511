package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/file_catalog/internal/domain"
)

func parseCredentials(r io.Reader) ([]*domain.Credential, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	var credentials []*domain.Credential
	for {
		var credential domain.Credential

		err := dec.Decode(&credential)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode credential record: %w", err)
		}

		if err := credential.Validate(); err != nil {
			return nil, fmt.Errorf("invalid credential record #%d: %w", len(credentials)+1, err)
		}

		credentials = append(credentials, &credential)
	}

	return credentials, nil
}
