package service

import (
	"fmt"
	"strconv"
	"strings"

	"costr/internal/model"
)

// DocumentPrefix returns the number prefix for a document type
func DocumentPrefix(docType model.DocumentType) string {
	if docType == model.DocTypeInvoice {
		return "INV"
	}
	return "QT"
}

// NextDocumentNumber returns "{prefix}-{n}" where n is one more than the highest
// sequence already used by documents of docType, zero-padded to four digits.
// The sequence is the leading digits of the last "-" segment; anything else
// counts as 0. Deleting the highest-numbered document frees its number for reuse.
func NextDocumentNumber(existing []model.Document, docType model.DocumentType) string {
	highest := 0
	for _, doc := range existing {
		if doc.DocType != docType {
			continue
		}
		if n := sequenceOf(doc.DocNumber); n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s-%04d", DocumentPrefix(docType), highest+1)
}

func sequenceOf(docNumber string) int {
	segment := docNumber
	if i := strings.LastIndex(docNumber, "-"); i >= 0 {
		segment = docNumber[i+1:]
	}
	segment = strings.TrimSpace(segment)

	end := 0
	for end < len(segment) && segment[end] >= '0' && segment[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(segment[:end])
	if err != nil {
		return 0
	}
	return n
}
