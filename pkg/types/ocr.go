// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageDetails is the metadata for one scanned newspaper page, as fetched
// from the historical-US archive before OCR enrichment.
type PageDetails struct {
	NewspaperName string `json:"newspaper_name" yaml:"newspaper_name"`
	DateIssued    string `json:"date_issued" yaml:"date_issued"`
	Sequence      int    `json:"sequence" yaml:"sequence"`
	PDFURL        string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`
	ImageURL      string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	TextURL       string `json:"text_url,omitempty" yaml:"text_url,omitempty"`
}

// PageRecord is the unified output of the OCR enrichment pipeline: page
// metadata plus both raw and cleaned OCR text. CleanedText equals RawText
// when the LLM cleaner failed or returned nothing.
type PageRecord struct {
	ArticleID     string `json:"article_id" yaml:"article_id"`
	NewspaperName string `json:"newspaper_name" yaml:"newspaper_name"`
	DateIssued    string `json:"date_issued" yaml:"date_issued"`
	Sequence      int    `json:"sequence" yaml:"sequence"`
	RawText       string `json:"raw_ocr_text" yaml:"raw_ocr_text"`
	CleanedText   string `json:"cleaned_ocr_text" yaml:"cleaned_ocr_text"`
	PDFURL        string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`
	ImageURL      string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}
