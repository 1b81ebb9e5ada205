// Package seed bootstraps a development database: schema for sqlite
// deployments and the starter catalog either dialect can opt into.
package seed

import (
	auditdomain "github.com/orthoflow/orthoflow/internal/audit/domain"
	documentdomain "github.com/orthoflow/orthoflow/internal/document/domain"
	orderdomain "github.com/orthoflow/orthoflow/internal/order/domain"
	payerdomain "github.com/orthoflow/orthoflow/internal/payer/domain"
	productdomain "github.com/orthoflow/orthoflow/internal/product/domain"
	vendordomain "github.com/orthoflow/orthoflow/internal/vendors/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnsureSchema creates the full schema from the gorm models. Postgres
// deployments use versioned migrations instead.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&vendordomain.Vendor{},
		&productdomain.Product{},
		&payerdomain.Payer{},
		&payerdomain.FeeSchedule{},
		&orderdomain.Patient{},
		&orderdomain.Clinician{},
		&orderdomain.Order{},
		&orderdomain.OrderLine{},
		&documentdomain.Document{},
		&auditdomain.AuditEvent{},
	)
}

// Catalog IDs are fixed so repeated startups are idempotent.
const (
	vendorOssur    int64 = 101
	vendorOttobock int64 = 102
	vendorBreg     int64 = 103

	payerMedicare int64 = 201
	payerBCBS     int64 = 202
	payerAetna    int64 = 203
)

// EnsureCatalog inserts the starter vendors, products, payers, and fee
// schedules, skipping rows that already exist. Amounts are cents.
func EnsureCatalog(db *gorm.DB) error {
	vendors := []vendordomain.Vendor{
		{ID: vendorOssur, Name: "Ossur Americas"},
		{ID: vendorOttobock, Name: "Ottobock"},
		{ID: vendorBreg, Name: "Breg Inc."},
	}

	products := []productdomain.Product{
		{ID: 1001, VendorID: vendorOssur, Name: "Knee Brace, Hinged", HCPCSCode: "L1832", UnitCost: 8500, MSRP: 17500, Category: "Orthoses", MeasurementFormRequired: true},
		{ID: 1002, VendorID: vendorOssur, Name: "Ankle-Foot Orthosis", HCPCSCode: "L1906", UnitCost: 12000, MSRP: 24000, Category: "Orthoses", MeasurementFormRequired: true},
		{ID: 1003, VendorID: vendorOssur, Name: "Walking Boot, Pneumatic", HCPCSCode: "L4361", UnitCost: 6500, MSRP: 13500, Category: "Orthoses"},
		{ID: 1004, VendorID: vendorOttobock, Name: "Lumbar-Sacral Orthosis", HCPCSCode: "L0637", UnitCost: 9500, MSRP: 21000, Category: "Spinal", MeasurementFormRequired: true},
		{ID: 1005, VendorID: vendorOttobock, Name: "Wrist Splint", HCPCSCode: "L3908", UnitCost: 3500, MSRP: 7500, Category: "Upper Extremity"},
		{ID: 1006, VendorID: vendorOttobock, Name: "Shoulder Sling", HCPCSCode: "L3670", UnitCost: 2500, MSRP: 5500, Category: "Upper Extremity"},
		{ID: 1007, VendorID: vendorBreg, Name: "Cervical Collar", HCPCSCode: "L0120", UnitCost: 1800, MSRP: 4200, Category: "Spinal"},
		{ID: 1008, VendorID: vendorBreg, Name: "TLSO Body Jacket", HCPCSCode: "L0456", UnitCost: 32000, MSRP: 68000, Category: "Spinal", MeasurementFormRequired: true},
		{ID: 1009, VendorID: vendorBreg, Name: "Post-Op Knee Brace", HCPCSCode: "L1812", UnitCost: 5500, MSRP: 11500, Category: "Orthoses"},
		{ID: 1010, VendorID: vendorBreg, Name: "Elbow Orthosis", HCPCSCode: "L3762", UnitCost: 4200, MSRP: 8900, Category: "Upper Extremity"},
	}

	payers := []payerdomain.Payer{
		{ID: payerMedicare, Name: "Medicare"},
		{ID: payerBCBS, Name: "Blue Cross Blue Shield"},
		{ID: payerAetna, Name: "Aetna"},
	}

	fees := []payerdomain.FeeSchedule{
		{ID: 3001, PayerID: payerMedicare, HCPCSCode: "L1832", Rate: 14200},
		{ID: 3002, PayerID: payerMedicare, HCPCSCode: "L1906", Rate: 18500},
		{ID: 3003, PayerID: payerMedicare, HCPCSCode: "L0637", Rate: 16800},
		{ID: 3004, PayerID: payerMedicare, HCPCSCode: "L0456", Rate: 52000},
		{ID: 3005, PayerID: payerMedicare, HCPCSCode: "L0120", Rate: 3600},
		{ID: 3006, PayerID: payerBCBS, HCPCSCode: "L1832", Rate: 15500},
		{ID: 3007, PayerID: payerBCBS, HCPCSCode: "L1906", Rate: 19900},
		{ID: 3008, PayerID: payerBCBS, HCPCSCode: "L3908", Rate: 6200},
		{ID: 3009, PayerID: payerBCBS, HCPCSCode: "L4361", Rate: 11800},
		{ID: 3010, PayerID: payerAetna, HCPCSCode: "L1832", Rate: 14900},
		{ID: 3011, PayerID: payerAetna, HCPCSCode: "L0637", Rate: 17500},
		{ID: 3012, PayerID: payerAetna, HCPCSCode: "L0456", Rate: 54500},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		skip := clause.OnConflict{DoNothing: true}
		if err := tx.Clauses(skip).Create(&vendors).Error; err != nil {
			return err
		}
		if err := tx.Clauses(skip).Create(&products).Error; err != nil {
			return err
		}
		if err := tx.Clauses(skip).Create(&payers).Error; err != nil {
			return err
		}
		return tx.Clauses(skip).Create(&fees).Error
	})
}
