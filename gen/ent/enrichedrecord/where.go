// Code generated by ent, DO NOT EDIT.

package enrichedrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldID, id))
}

// UploadID applies equality check predicate on the "upload_id" field. It's identical to UploadIDEQ.
func UploadID(v uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldUploadID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldOwnerID, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldCompanyName, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldWebsite, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldCountry, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldCity, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldSize, v))
}

// Industry applies equality check predicate on the "industry" field. It's identical to IndustryEQ.
func Industry(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldIndustry, v))
}

// Revenue applies equality check predicate on the "revenue" field. It's identical to RevenueEQ.
func Revenue(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldRevenue, v))
}

// EnrichmentStatus applies equality check predicate on the "enrichment_status" field. It's identical to EnrichmentStatusEQ.
func EnrichmentStatus(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldEnrichmentStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UploadIDEQ applies the EQ predicate on the "upload_id" field.
func UploadIDEQ(v uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldUploadID, v))
}

// UploadIDNEQ applies the NEQ predicate on the "upload_id" field.
func UploadIDNEQ(v uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldUploadID, v))
}

// UploadIDIn applies the In predicate on the "upload_id" field.
func UploadIDIn(vs ...uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldUploadID, vs...))
}

// UploadIDNotIn applies the NotIn predicate on the "upload_id" field.
func UploadIDNotIn(vs ...uuid.UUID) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldUploadID, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContainsFold(FieldOwnerID, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContainsFold(FieldCompanyName, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContainsFold(FieldWebsite, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryIsNil applies the IsNil predicate on the "country" field.
func CountryIsNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIsNull(FieldCountry))
}

// CountryNotNil applies the NotNil predicate on the "country" field.
func CountryNotNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotNull(FieldCountry))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContainsFold(FieldCountry, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContainsFold(FieldCity, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldSize, v))
}

// SizeContains applies the Contains predicate on the "size" field.
func SizeContains(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContains(FieldSize, v))
}

// SizeHasPrefix applies the HasPrefix predicate on the "size" field.
func SizeHasPrefix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasPrefix(FieldSize, v))
}

// SizeHasSuffix applies the HasSuffix predicate on the "size" field.
func SizeHasSuffix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasSuffix(FieldSize, v))
}

// SizeIsNil applies the IsNil predicate on the "size" field.
func SizeIsNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIsNull(FieldSize))
}

// SizeNotNil applies the NotNil predicate on the "size" field.
func SizeNotNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotNull(FieldSize))
}

// SizeEqualFold applies the EqualFold predicate on the "size" field.
func SizeEqualFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEqualFold(FieldSize, v))
}

// SizeContainsFold applies the ContainsFold predicate on the "size" field.
func SizeContainsFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContainsFold(FieldSize, v))
}

// IndustryEQ applies the EQ predicate on the "industry" field.
func IndustryEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldIndustry, v))
}

// IndustryNEQ applies the NEQ predicate on the "industry" field.
func IndustryNEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldIndustry, v))
}

// IndustryIn applies the In predicate on the "industry" field.
func IndustryIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldIndustry, vs...))
}

// IndustryNotIn applies the NotIn predicate on the "industry" field.
func IndustryNotIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldIndustry, vs...))
}

// IndustryGT applies the GT predicate on the "industry" field.
func IndustryGT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldIndustry, v))
}

// IndustryGTE applies the GTE predicate on the "industry" field.
func IndustryGTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldIndustry, v))
}

// IndustryLT applies the LT predicate on the "industry" field.
func IndustryLT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldIndustry, v))
}

// IndustryLTE applies the LTE predicate on the "industry" field.
func IndustryLTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldIndustry, v))
}

// IndustryContains applies the Contains predicate on the "industry" field.
func IndustryContains(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContains(FieldIndustry, v))
}

// IndustryHasPrefix applies the HasPrefix predicate on the "industry" field.
func IndustryHasPrefix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasPrefix(FieldIndustry, v))
}

// IndustryHasSuffix applies the HasSuffix predicate on the "industry" field.
func IndustryHasSuffix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasSuffix(FieldIndustry, v))
}

// IndustryIsNil applies the IsNil predicate on the "industry" field.
func IndustryIsNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIsNull(FieldIndustry))
}

// IndustryNotNil applies the NotNil predicate on the "industry" field.
func IndustryNotNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotNull(FieldIndustry))
}

// IndustryEqualFold applies the EqualFold predicate on the "industry" field.
func IndustryEqualFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEqualFold(FieldIndustry, v))
}

// IndustryContainsFold applies the ContainsFold predicate on the "industry" field.
func IndustryContainsFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContainsFold(FieldIndustry, v))
}

// RevenueEQ applies the EQ predicate on the "revenue" field.
func RevenueEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldRevenue, v))
}

// RevenueNEQ applies the NEQ predicate on the "revenue" field.
func RevenueNEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldRevenue, v))
}

// RevenueIn applies the In predicate on the "revenue" field.
func RevenueIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldRevenue, vs...))
}

// RevenueNotIn applies the NotIn predicate on the "revenue" field.
func RevenueNotIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldRevenue, vs...))
}

// RevenueGT applies the GT predicate on the "revenue" field.
func RevenueGT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldRevenue, v))
}

// RevenueGTE applies the GTE predicate on the "revenue" field.
func RevenueGTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldRevenue, v))
}

// RevenueLT applies the LT predicate on the "revenue" field.
func RevenueLT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldRevenue, v))
}

// RevenueLTE applies the LTE predicate on the "revenue" field.
func RevenueLTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldRevenue, v))
}

// RevenueContains applies the Contains predicate on the "revenue" field.
func RevenueContains(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContains(FieldRevenue, v))
}

// RevenueHasPrefix applies the HasPrefix predicate on the "revenue" field.
func RevenueHasPrefix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasPrefix(FieldRevenue, v))
}

// RevenueHasSuffix applies the HasSuffix predicate on the "revenue" field.
func RevenueHasSuffix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasSuffix(FieldRevenue, v))
}

// RevenueIsNil applies the IsNil predicate on the "revenue" field.
func RevenueIsNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIsNull(FieldRevenue))
}

// RevenueNotNil applies the NotNil predicate on the "revenue" field.
func RevenueNotNil() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotNull(FieldRevenue))
}

// RevenueEqualFold applies the EqualFold predicate on the "revenue" field.
func RevenueEqualFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEqualFold(FieldRevenue, v))
}

// RevenueContainsFold applies the ContainsFold predicate on the "revenue" field.
func RevenueContainsFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContainsFold(FieldRevenue, v))
}

// EnrichmentStatusEQ applies the EQ predicate on the "enrichment_status" field.
func EnrichmentStatusEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldEnrichmentStatus, v))
}

// EnrichmentStatusNEQ applies the NEQ predicate on the "enrichment_status" field.
func EnrichmentStatusNEQ(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldEnrichmentStatus, v))
}

// EnrichmentStatusIn applies the In predicate on the "enrichment_status" field.
func EnrichmentStatusIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldEnrichmentStatus, vs...))
}

// EnrichmentStatusNotIn applies the NotIn predicate on the "enrichment_status" field.
func EnrichmentStatusNotIn(vs ...string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldEnrichmentStatus, vs...))
}

// EnrichmentStatusGT applies the GT predicate on the "enrichment_status" field.
func EnrichmentStatusGT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldEnrichmentStatus, v))
}

// EnrichmentStatusGTE applies the GTE predicate on the "enrichment_status" field.
func EnrichmentStatusGTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldEnrichmentStatus, v))
}

// EnrichmentStatusLT applies the LT predicate on the "enrichment_status" field.
func EnrichmentStatusLT(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldEnrichmentStatus, v))
}

// EnrichmentStatusLTE applies the LTE predicate on the "enrichment_status" field.
func EnrichmentStatusLTE(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldEnrichmentStatus, v))
}

// EnrichmentStatusContains applies the Contains predicate on the "enrichment_status" field.
func EnrichmentStatusContains(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContains(FieldEnrichmentStatus, v))
}

// EnrichmentStatusHasPrefix applies the HasPrefix predicate on the "enrichment_status" field.
func EnrichmentStatusHasPrefix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasPrefix(FieldEnrichmentStatus, v))
}

// EnrichmentStatusHasSuffix applies the HasSuffix predicate on the "enrichment_status" field.
func EnrichmentStatusHasSuffix(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldHasSuffix(FieldEnrichmentStatus, v))
}

// EnrichmentStatusEqualFold applies the EqualFold predicate on the "enrichment_status" field.
func EnrichmentStatusEqualFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEqualFold(FieldEnrichmentStatus, v))
}

// EnrichmentStatusContainsFold applies the ContainsFold predicate on the "enrichment_status" field.
func EnrichmentStatusContainsFold(v string) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldContainsFold(FieldEnrichmentStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUpload applies the HasEdge predicate on the "upload" edge.
func HasUpload() predicate.EnrichedRecord {
	return predicate.EnrichedRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UploadTable, UploadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUploadWith applies the HasEdge predicate on the "upload" edge with a given conditions (other predicates).
func HasUploadWith(preds ...predicate.Upload) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(func(s *sql.Selector) {
		step := newUploadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnrichedRecord) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnrichedRecord) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnrichedRecord) predicate.EnrichedRecord {
	return predicate.EnrichedRecord(sql.NotPredicates(p))
}
