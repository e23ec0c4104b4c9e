// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ComparisonSnapshotsColumns holds the columns for the "comparison_snapshots" table.
	ComparisonSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "total_extracted", Type: field.TypeInt},
		{Name: "total_contacts", Type: field.TypeInt},
		{Name: "exact_matches", Type: field.TypeInt},
		{Name: "partial_matches", Type: field.TypeInt},
		{Name: "new_numbers", Type: field.TypeInt},
		{Name: "not_compared", Type: field.TypeInt},
		{Name: "match_rate", Type: field.TypeFloat64},
		{Name: "compared_at", Type: field.TypeTime},
	}
	// ComparisonSnapshotsTable holds the schema information for the "comparison_snapshots" table.
	ComparisonSnapshotsTable = &schema.Table{
		Name:       "comparison_snapshots",
		Columns:    ComparisonSnapshotsColumns,
		PrimaryKey: []*schema.Column{ComparisonSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "comparisonsnapshot_compared_at",
				Unique:  false,
				Columns: []*schema.Column{ComparisonSnapshotsColumns[8]},
			},
		},
	}
	// ExistingContactsColumns holds the columns for the "existing_contacts" table.
	ExistingContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "normalized_number", Type: field.TypeString, Size: 20},
		{Name: "raw_number", Type: field.TypeString, Size: 50},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "company", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "source", Type: field.TypeString, Size: 100, Default: "csv"},
		{Name: "external_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// ExistingContactsTable holds the schema information for the "existing_contacts" table.
	ExistingContactsTable = &schema.Table{
		Name:       "existing_contacts",
		Columns:    ExistingContactsColumns,
		PrimaryKey: []*schema.Column{ExistingContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "existingcontact_normalized_number_source",
				Unique:  true,
				Columns: []*schema.Column{ExistingContactsColumns[1], ExistingContactsColumns[6]},
			},
			{
				Name:    "existingcontact_normalized_number",
				Unique:  false,
				Columns: []*schema.Column{ExistingContactsColumns[1]},
			},
		},
	}
	// ExtractedNumbersColumns holds the columns for the "extracted_numbers" table.
	ExtractedNumbersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_number", Type: field.TypeString, Size: 50},
		{Name: "normalized_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "country_code", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "country_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "carrier", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "number_type", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "is_valid", Type: field.TypeBool, Default: false},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "screenshot_id", Type: field.TypeUUID},
	}
	// ExtractedNumbersTable holds the schema information for the "extracted_numbers" table.
	ExtractedNumbersTable = &schema.Table{
		Name:       "extracted_numbers",
		Columns:    ExtractedNumbersColumns,
		PrimaryKey: []*schema.Column{ExtractedNumbersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_numbers_screenshots_numbers",
				Columns:    []*schema.Column{ExtractedNumbersColumns[9]},
				RefColumns: []*schema.Column{ScreenshotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractednumber_screenshot_id_normalized_number",
				Unique:  true,
				Columns: []*schema.Column{ExtractedNumbersColumns[9], ExtractedNumbersColumns[2]},
			},
			{
				Name:    "extractednumber_normalized_number",
				Unique:  false,
				Columns: []*schema.Column{ExtractedNumbersColumns[2]},
			},
			{
				Name:    "extractednumber_country_code",
				Unique:  false,
				Columns: []*schema.Column{ExtractedNumbersColumns[3]},
			},
			{
				Name:    "extractednumber_is_valid",
				Unique:  false,
				Columns: []*schema.Column{ExtractedNumbersColumns[7]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "color", Type: field.TypeString, Size: 7},
		{Name: "is_system", Type: field.TypeBool, Default: false},
		{Name: "country_code", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "group_country_code",
				Unique:  true,
				Columns: []*schema.Column{GroupsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_system",
				},
			},
		},
	}
	// ScreenshotsColumns holds the columns for the "screenshots" table.
	ScreenshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString, Size: 255},
		{Name: "file_path", Type: field.TypeString, Size: 500},
		{Name: "source", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text", "sqlite3": "text"}},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ScreenshotsTable holds the schema information for the "screenshots" table.
	ScreenshotsTable = &schema.Table{
		Name:       "screenshots",
		Columns:    ScreenshotsColumns,
		PrimaryKey: []*schema.Column{ScreenshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "screenshot_processed",
				Unique:  false,
				Columns: []*schema.Column{ScreenshotsColumns[5]},
			},
			{
				Name:    "screenshot_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ScreenshotsColumns[7]},
			},
		},
	}
	// GroupNumbersColumns holds the columns for the "group_numbers" table.
	GroupNumbersColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeUUID},
		{Name: "extracted_number_id", Type: field.TypeUUID},
	}
	// GroupNumbersTable holds the schema information for the "group_numbers" table.
	GroupNumbersTable = &schema.Table{
		Name:       "group_numbers",
		Columns:    GroupNumbersColumns,
		PrimaryKey: []*schema.Column{GroupNumbersColumns[0], GroupNumbersColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_numbers_group_id",
				Columns:    []*schema.Column{GroupNumbersColumns[0]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "group_numbers_extracted_number_id",
				Columns:    []*schema.Column{GroupNumbersColumns[1]},
				RefColumns: []*schema.Column{ExtractedNumbersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ComparisonSnapshotsTable,
		ExistingContactsTable,
		ExtractedNumbersTable,
		GroupsTable,
		ScreenshotsTable,
		GroupNumbersTable,
	}
)

func init() {
	ComparisonSnapshotsTable.Annotation = &entsql.Annotation{
		Table: "comparison_snapshots",
	}
	ExistingContactsTable.Annotation = &entsql.Annotation{
		Table: "existing_contacts",
	}
	ExtractedNumbersTable.ForeignKeys[0].RefTable = ScreenshotsTable
	ExtractedNumbersTable.Annotation = &entsql.Annotation{
		Table: "extracted_numbers",
	}
	GroupsTable.Annotation = &entsql.Annotation{
		Table: "groups",
	}
	ScreenshotsTable.Annotation = &entsql.Annotation{
		Table: "screenshots",
	}
	GroupNumbersTable.ForeignKeys[0].RefTable = GroupsTable
	GroupNumbersTable.ForeignKeys[1].RefTable = ExtractedNumbersTable
}
