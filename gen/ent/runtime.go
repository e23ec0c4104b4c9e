// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/reconkit/phone-recon/db/ent/schema"
	"github.com/reconkit/phone-recon/gen/ent/comparisonsnapshot"
	"github.com/reconkit/phone-recon/gen/ent/existingcontact"
	"github.com/reconkit/phone-recon/gen/ent/extractednumber"
	"github.com/reconkit/phone-recon/gen/ent/group"
	"github.com/reconkit/phone-recon/gen/ent/screenshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	comparisonsnapshotFields := schema.ComparisonSnapshot{}.Fields()
	_ = comparisonsnapshotFields
	// comparisonsnapshotDescTotalExtracted is the schema descriptor for total_extracted field.
	comparisonsnapshotDescTotalExtracted := comparisonsnapshotFields[1].Descriptor()
	// comparisonsnapshot.TotalExtractedValidator is a validator for the "total_extracted" field. It is called by the builders before save.
	comparisonsnapshot.TotalExtractedValidator = comparisonsnapshotDescTotalExtracted.Validators[0].(func(int) error)
	// comparisonsnapshotDescTotalContacts is the schema descriptor for total_contacts field.
	comparisonsnapshotDescTotalContacts := comparisonsnapshotFields[2].Descriptor()
	// comparisonsnapshot.TotalContactsValidator is a validator for the "total_contacts" field. It is called by the builders before save.
	comparisonsnapshot.TotalContactsValidator = comparisonsnapshotDescTotalContacts.Validators[0].(func(int) error)
	// comparisonsnapshotDescExactMatches is the schema descriptor for exact_matches field.
	comparisonsnapshotDescExactMatches := comparisonsnapshotFields[3].Descriptor()
	// comparisonsnapshot.ExactMatchesValidator is a validator for the "exact_matches" field. It is called by the builders before save.
	comparisonsnapshot.ExactMatchesValidator = comparisonsnapshotDescExactMatches.Validators[0].(func(int) error)
	// comparisonsnapshotDescPartialMatches is the schema descriptor for partial_matches field.
	comparisonsnapshotDescPartialMatches := comparisonsnapshotFields[4].Descriptor()
	// comparisonsnapshot.PartialMatchesValidator is a validator for the "partial_matches" field. It is called by the builders before save.
	comparisonsnapshot.PartialMatchesValidator = comparisonsnapshotDescPartialMatches.Validators[0].(func(int) error)
	// comparisonsnapshotDescNewNumbers is the schema descriptor for new_numbers field.
	comparisonsnapshotDescNewNumbers := comparisonsnapshotFields[5].Descriptor()
	// comparisonsnapshot.NewNumbersValidator is a validator for the "new_numbers" field. It is called by the builders before save.
	comparisonsnapshot.NewNumbersValidator = comparisonsnapshotDescNewNumbers.Validators[0].(func(int) error)
	// comparisonsnapshotDescNotCompared is the schema descriptor for not_compared field.
	comparisonsnapshotDescNotCompared := comparisonsnapshotFields[6].Descriptor()
	// comparisonsnapshot.NotComparedValidator is a validator for the "not_compared" field. It is called by the builders before save.
	comparisonsnapshot.NotComparedValidator = comparisonsnapshotDescNotCompared.Validators[0].(func(int) error)
	// comparisonsnapshotDescComparedAt is the schema descriptor for compared_at field.
	comparisonsnapshotDescComparedAt := comparisonsnapshotFields[8].Descriptor()
	// comparisonsnapshot.DefaultComparedAt holds the default value on creation for the compared_at field.
	comparisonsnapshot.DefaultComparedAt = comparisonsnapshotDescComparedAt.Default.(func() time.Time)
	// comparisonsnapshotDescID is the schema descriptor for id field.
	comparisonsnapshotDescID := comparisonsnapshotFields[0].Descriptor()
	// comparisonsnapshot.DefaultID holds the default value on creation for the id field.
	comparisonsnapshot.DefaultID = comparisonsnapshotDescID.Default.(func() uuid.UUID)
	existingcontactFields := schema.ExistingContact{}.Fields()
	_ = existingcontactFields
	// existingcontactDescNormalizedNumber is the schema descriptor for normalized_number field.
	existingcontactDescNormalizedNumber := existingcontactFields[1].Descriptor()
	// existingcontact.NormalizedNumberValidator is a validator for the "normalized_number" field. It is called by the builders before save.
	existingcontact.NormalizedNumberValidator = func() func(string) error {
		validators := existingcontactDescNormalizedNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(normalized_number string) error {
			for _, fn := range fns {
				if err := fn(normalized_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// existingcontactDescRawNumber is the schema descriptor for raw_number field.
	existingcontactDescRawNumber := existingcontactFields[2].Descriptor()
	// existingcontact.RawNumberValidator is a validator for the "raw_number" field. It is called by the builders before save.
	existingcontact.RawNumberValidator = func() func(string) error {
		validators := existingcontactDescRawNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(raw_number string) error {
			for _, fn := range fns {
				if err := fn(raw_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// existingcontactDescName is the schema descriptor for name field.
	existingcontactDescName := existingcontactFields[3].Descriptor()
	// existingcontact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	existingcontact.NameValidator = existingcontactDescName.Validators[0].(func(string) error)
	// existingcontactDescEmail is the schema descriptor for email field.
	existingcontactDescEmail := existingcontactFields[4].Descriptor()
	// existingcontact.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	existingcontact.EmailValidator = existingcontactDescEmail.Validators[0].(func(string) error)
	// existingcontactDescCompany is the schema descriptor for company field.
	existingcontactDescCompany := existingcontactFields[5].Descriptor()
	// existingcontact.CompanyValidator is a validator for the "company" field. It is called by the builders before save.
	existingcontact.CompanyValidator = existingcontactDescCompany.Validators[0].(func(string) error)
	// existingcontactDescSource is the schema descriptor for source field.
	existingcontactDescSource := existingcontactFields[6].Descriptor()
	// existingcontact.DefaultSource holds the default value on creation for the source field.
	existingcontact.DefaultSource = existingcontactDescSource.Default.(string)
	// existingcontact.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	existingcontact.SourceValidator = existingcontactDescSource.Validators[0].(func(string) error)
	// existingcontactDescExternalID is the schema descriptor for external_id field.
	existingcontactDescExternalID := existingcontactFields[7].Descriptor()
	// existingcontact.ExternalIDValidator is a validator for the "external_id" field. It is called by the builders before save.
	existingcontact.ExternalIDValidator = existingcontactDescExternalID.Validators[0].(func(string) error)
	// existingcontactDescImportedAt is the schema descriptor for imported_at field.
	existingcontactDescImportedAt := existingcontactFields[8].Descriptor()
	// existingcontact.DefaultImportedAt holds the default value on creation for the imported_at field.
	existingcontact.DefaultImportedAt = existingcontactDescImportedAt.Default.(func() time.Time)
	// existingcontactDescID is the schema descriptor for id field.
	existingcontactDescID := existingcontactFields[0].Descriptor()
	// existingcontact.DefaultID holds the default value on creation for the id field.
	existingcontact.DefaultID = existingcontactDescID.Default.(func() uuid.UUID)
	extractednumberFields := schema.ExtractedNumber{}.Fields()
	_ = extractednumberFields
	// extractednumberDescRawNumber is the schema descriptor for raw_number field.
	extractednumberDescRawNumber := extractednumberFields[2].Descriptor()
	// extractednumber.RawNumberValidator is a validator for the "raw_number" field. It is called by the builders before save.
	extractednumber.RawNumberValidator = func() func(string) error {
		validators := extractednumberDescRawNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(raw_number string) error {
			for _, fn := range fns {
				if err := fn(raw_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractednumberDescNormalizedNumber is the schema descriptor for normalized_number field.
	extractednumberDescNormalizedNumber := extractednumberFields[3].Descriptor()
	// extractednumber.NormalizedNumberValidator is a validator for the "normalized_number" field. It is called by the builders before save.
	extractednumber.NormalizedNumberValidator = extractednumberDescNormalizedNumber.Validators[0].(func(string) error)
	// extractednumberDescCountryCode is the schema descriptor for country_code field.
	extractednumberDescCountryCode := extractednumberFields[4].Descriptor()
	// extractednumber.CountryCodeValidator is a validator for the "country_code" field. It is called by the builders before save.
	extractednumber.CountryCodeValidator = extractednumberDescCountryCode.Validators[0].(func(string) error)
	// extractednumberDescCountryName is the schema descriptor for country_name field.
	extractednumberDescCountryName := extractednumberFields[5].Descriptor()
	// extractednumber.CountryNameValidator is a validator for the "country_name" field. It is called by the builders before save.
	extractednumber.CountryNameValidator = extractednumberDescCountryName.Validators[0].(func(string) error)
	// extractednumberDescCarrier is the schema descriptor for carrier field.
	extractednumberDescCarrier := extractednumberFields[6].Descriptor()
	// extractednumber.CarrierValidator is a validator for the "carrier" field. It is called by the builders before save.
	extractednumber.CarrierValidator = extractednumberDescCarrier.Validators[0].(func(string) error)
	// extractednumberDescNumberType is the schema descriptor for number_type field.
	extractednumberDescNumberType := extractednumberFields[7].Descriptor()
	// extractednumber.NumberTypeValidator is a validator for the "number_type" field. It is called by the builders before save.
	extractednumber.NumberTypeValidator = extractednumberDescNumberType.Validators[0].(func(string) error)
	// extractednumberDescIsValid is the schema descriptor for is_valid field.
	extractednumberDescIsValid := extractednumberFields[8].Descriptor()
	// extractednumber.DefaultIsValid holds the default value on creation for the is_valid field.
	extractednumber.DefaultIsValid = extractednumberDescIsValid.Default.(bool)
	// extractednumberDescExtractedAt is the schema descriptor for extracted_at field.
	extractednumberDescExtractedAt := extractednumberFields[9].Descriptor()
	// extractednumber.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	extractednumber.DefaultExtractedAt = extractednumberDescExtractedAt.Default.(func() time.Time)
	// extractednumberDescID is the schema descriptor for id field.
	extractednumberDescID := extractednumberFields[0].Descriptor()
	// extractednumber.DefaultID holds the default value on creation for the id field.
	extractednumber.DefaultID = extractednumberDescID.Default.(func() uuid.UUID)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescName is the schema descriptor for name field.
	groupDescName := groupFields[1].Descriptor()
	// group.NameValidator is a validator for the "name" field. It is called by the builders before save.
	group.NameValidator = func() func(string) error {
		validators := groupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// groupDescColor is the schema descriptor for color field.
	groupDescColor := groupFields[3].Descriptor()
	// group.ColorValidator is a validator for the "color" field. It is called by the builders before save.
	group.ColorValidator = groupDescColor.Validators[0].(func(string) error)
	// groupDescIsSystem is the schema descriptor for is_system field.
	groupDescIsSystem := groupFields[4].Descriptor()
	// group.DefaultIsSystem holds the default value on creation for the is_system field.
	group.DefaultIsSystem = groupDescIsSystem.Default.(bool)
	// groupDescCountryCode is the schema descriptor for country_code field.
	groupDescCountryCode := groupFields[5].Descriptor()
	// group.CountryCodeValidator is a validator for the "country_code" field. It is called by the builders before save.
	group.CountryCodeValidator = groupDescCountryCode.Validators[0].(func(string) error)
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupFields[6].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescID is the schema descriptor for id field.
	groupDescID := groupFields[0].Descriptor()
	// group.DefaultID holds the default value on creation for the id field.
	group.DefaultID = groupDescID.Default.(func() uuid.UUID)
	screenshotFields := schema.Screenshot{}.Fields()
	_ = screenshotFields
	// screenshotDescFilename is the schema descriptor for filename field.
	screenshotDescFilename := screenshotFields[1].Descriptor()
	// screenshot.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	screenshot.FilenameValidator = func() func(string) error {
		validators := screenshotDescFilename.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(filename string) error {
			for _, fn := range fns {
				if err := fn(filename); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// screenshotDescFilePath is the schema descriptor for file_path field.
	screenshotDescFilePath := screenshotFields[2].Descriptor()
	// screenshot.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	screenshot.FilePathValidator = func() func(string) error {
		validators := screenshotDescFilePath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_path string) error {
			for _, fn := range fns {
				if err := fn(file_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// screenshotDescSource is the schema descriptor for source field.
	screenshotDescSource := screenshotFields[3].Descriptor()
	// screenshot.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	screenshot.SourceValidator = func() func(string) error {
		validators := screenshotDescSource.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source string) error {
			for _, fn := range fns {
				if err := fn(source); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// screenshotDescProcessed is the schema descriptor for processed field.
	screenshotDescProcessed := screenshotFields[5].Descriptor()
	// screenshot.DefaultProcessed holds the default value on creation for the processed field.
	screenshot.DefaultProcessed = screenshotDescProcessed.Default.(bool)
	// screenshotDescUploadedAt is the schema descriptor for uploaded_at field.
	screenshotDescUploadedAt := screenshotFields[7].Descriptor()
	// screenshot.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	screenshot.DefaultUploadedAt = screenshotDescUploadedAt.Default.(func() time.Time)
	// screenshotDescID is the schema descriptor for id field.
	screenshotDescID := screenshotFields[0].Descriptor()
	// screenshot.DefaultID holds the default value on creation for the id field.
	screenshot.DefaultID = screenshotDescID.Default.(func() uuid.UUID)
}
