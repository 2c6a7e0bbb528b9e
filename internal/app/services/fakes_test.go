package services

import (
	"context"
	"sort"

	"github.com/mbenali/gestion-etudiants/internal/app/models"
	"github.com/mbenali/gestion-etudiants/internal/pkg/apperrors"
)

// In-memory repository fakes used across the service tests.

type fakeDepartmentRepo struct {
	departments map[int64]*models.Department
	nextID      int64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[int64]*models.Department), nextID: 1}
}

func (r *fakeDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	for _, d := range r.departments {
		if d.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	department.ID = r.nextID
	r.nextID++
	r.departments[department.ID] = department
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return d, nil
}

func (r *fakeDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeFormationRepo struct {
	formations map[int64]*models.Formation
	nextID     int64
}

func newFakeFormationRepo() *fakeFormationRepo {
	return &fakeFormationRepo{formations: make(map[int64]*models.Formation), nextID: 1}
}

func (r *fakeFormationRepo) Create(_ context.Context, formation *models.Formation) error {
	formation.ID = r.nextID
	r.nextID++
	r.formations[formation.ID] = formation
	return nil
}

func (r *fakeFormationRepo) GetByID(_ context.Context, id int64) (*models.Formation, error) {
	f, ok := r.formations[id]
	if !ok {
		return nil, apperrors.ErrFormationNotFound
	}
	return f, nil
}

func (r *fakeFormationRepo) GetAll(_ context.Context) ([]*models.Formation, error) {
	out := make([]*models.Formation, 0, len(r.formations))
	for _, f := range r.formations {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student), nextID: 1}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range r.students {
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = r.nextID
	r.nextID++
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (r *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range r.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := r.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	for id, s := range r.students {
		if id != student.ID && s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.students, id)
	return nil
}

type enrollmentKey struct {
	studentID   int64
	formationID int64
}

type fakeEnrollmentRepo struct {
	pairs      map[enrollmentKey]struct{}
	order      []enrollmentKey
	formations *fakeFormationRepo
}

func newFakeEnrollmentRepo(formations *fakeFormationRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		pairs:      make(map[enrollmentKey]struct{}),
		formations: formations,
	}
}

func (r *fakeEnrollmentRepo) Add(_ context.Context, studentID, formationID int64) error {
	key := enrollmentKey{studentID, formationID}
	if _, ok := r.pairs[key]; ok {
		return apperrors.ErrAlreadyEnrolled
	}
	r.pairs[key] = struct{}{}
	r.order = append(r.order, key)
	return nil
}

func (r *fakeEnrollmentRepo) Remove(_ context.Context, studentID, formationID int64) error {
	key := enrollmentKey{studentID, formationID}
	if _, ok := r.pairs[key]; !ok {
		return apperrors.ErrNotEnrolled
	}
	delete(r.pairs, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeEnrollmentRepo) ListFormationsByStudentID(ctx context.Context, studentID int64) ([]*models.Formation, error) {
	var out []*models.Formation
	for _, key := range r.order {
		if key.studentID != studentID {
			continue
		}
		f, err := r.formations.GetByID(ctx, key.formationID)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
