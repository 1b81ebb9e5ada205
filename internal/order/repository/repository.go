package repository

import (
	"context"

	"github.com/orthoflow/orthoflow/internal/order/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertPatient(ctx context.Context, db *gorm.DB, patient *domain.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *repo) InsertClinician(ctx context.Context, db *gorm.DB, clinician *domain.Clinician) error {
	return db.WithContext(ctx).Create(clinician).Error
}

func (r *repo) InsertOrder(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Create(order).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64, forUpdate bool) (*domain.Order, error) {
	stmt := db.WithContext(ctx).Model(&domain.Order{})
	if forUpdate && db.Dialector.Name() == "postgres" {
		// sqlite serializes writers on its own; FOR UPDATE is a
		// postgres-only clause.
		stmt = stmt.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var o domain.Order
	err := stmt.Where("id = ?", id).First(&o).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *repo) FindPatient(ctx context.Context, db *gorm.DB, id int64) (*domain.Patient, error) {
	var p domain.Patient
	err := db.WithContext(ctx).Raw(
		`SELECT id, first_name, last_name, address, phone, email, created_at
		 FROM patients WHERE id = ?`, id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindClinician(ctx context.Context, db *gorm.DB, id int64) (*domain.Clinician, error) {
	var c domain.Clinician
	err := db.WithContext(ctx).Raw(
		`SELECT id, first_name, last_name, clinic_name, clinic_address, phone, email, created_at
		 FROM clinicians WHERE id = ?`, id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) UpdateOrder(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"payer_id":            order.PayerID,
			"payer_type":          order.PayerType,
			"is_draft":            order.IsDraft,
			"status":              order.Status,
			"insurance_checklist": order.InsuranceChecklist,
			"submitted_at":        order.SubmittedAt,
			"updated_at":          order.UpdatedAt,
		}).Error
}

func (r *repo) UpdatePatient(ctx context.Context, db *gorm.DB, patient *domain.Patient) error {
	return db.WithContext(ctx).Exec(
		`UPDATE patients SET first_name = ?, last_name = ?, address = ?, phone = ?, email = ?
		 WHERE id = ?`,
		patient.FirstName,
		patient.LastName,
		patient.Address,
		patient.Phone,
		patient.Email,
		patient.ID,
	).Error
}

func (r *repo) UpdateClinician(ctx context.Context, db *gorm.DB, clinician *domain.Clinician) error {
	return db.WithContext(ctx).Exec(
		`UPDATE clinicians SET first_name = ?, last_name = ?, clinic_name = ?, clinic_address = ?, phone = ?, email = ?
		 WHERE id = ?`,
		clinician.FirstName,
		clinician.LastName,
		clinician.ClinicName,
		clinician.ClinicAddress,
		clinician.Phone,
		clinician.Email,
		clinician.ID,
	).Error
}

func (r *repo) ReplaceLines(ctx context.Context, db *gorm.DB, orderID int64, lines []domain.OrderLine) error {
	if err := db.WithContext(ctx).Exec(`DELETE FROM order_lines WHERE order_id = ?`, orderID).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&lines).Error
}

func (r *repo) FindLines(ctx context.Context, db *gorm.DB, orderID int64) ([]domain.LineDetail, error) {
	var items []domain.LineDetail
	err := db.WithContext(ctx).Raw(
		`SELECT ol.id, ol.order_id, ol.product_id, ol.quantity, ol.unit_cost,
		        ol.unit_price, ol.line_total, ol.measurement_form_url, ol.created_at,
		        p.name AS product_name, p.hcpcs_code
		 FROM order_lines ol
		 JOIN products p ON p.id = ol.product_id
		 WHERE ol.order_id = ?
		 ORDER BY ol.id ASC`,
		orderID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.SummaryRow, error) {
	stmt := db.WithContext(ctx).
		Table("orders o").
		Select(`o.*, p.first_name AS patient_first_name, p.last_name AS patient_last_name`).
		Joins(`JOIN patients p ON p.id = o.patient_id`)

	if filter.Status != "" {
		stmt = stmt.Where("o.status = ? AND o.is_draft = ?", filter.Status, false)
	}
	if filter.PatientName != "" {
		like := "%" + filter.PatientName + "%"
		stmt = stmt.Where("(p.first_name LIKE ? OR p.last_name LIKE ?)", like, like)
	}
	if filter.OrderID != "" {
		stmt = stmt.Where("CAST(o.id AS TEXT) LIKE ?", "%"+filter.OrderID+"%")
	}
	if filter.CreatedFrom != nil {
		stmt = stmt.Where("o.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		stmt = stmt.Where("o.created_at <= ?", *filter.CreatedTo)
	}

	var items []domain.SummaryRow
	if err := stmt.Order("o.created_at DESC, o.id DESC").Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
