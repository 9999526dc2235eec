package datamart

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

// StudentRef carries the columns child tables copy from student_performance.
type StudentRef struct {
	NIM     string
	Name    string
	Faculty string
	Program string
}

// LecturerRef carries the columns child tables copy from lecturer_profile.
type LecturerRef struct {
	NIP     string
	Name    string
	Faculty string
	Program string
}

// CourseRef carries the columns grade_distribution copies from
// course_performance, including enrollment for the bucket split.
type CourseRef struct {
	Code       string
	Name       string
	Faculty    string
	Program    string
	Enrollment int
}

// SampleStudents reads up to limit students for cross-domain linkage. ok is
// false on read failure; the caller fabricates a same-shaped fallback so
// generation never blocks on storage.
func (s *Store) SampleStudents(ctx context.Context, limit uint64) (refs []StudentRef, ok bool) {
	builder := s.sb.Select("nim", "nama_mahasiswa", "fakultas", "program_studi").
		From(SchemaName + ".student_performance").
		Limit(limit)

	err := s.query(ctx, builder, func(rows pgx.Rows) error {
		var ref StudentRef
		if err := rows.Scan(&ref.NIM, &ref.Name, &ref.Faculty, &ref.Program); err != nil {
			return err
		}
		refs = append(refs, ref)
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load existing students, falling back to fabricated references")
		return nil, false
	}
	return refs, true
}

// SampleLecturers reads up to limit lecturers for cross-domain linkage. A
// limit of 0 reads the whole table. ok is false on read failure.
func (s *Store) SampleLecturers(ctx context.Context, limit uint64) (refs []LecturerRef, ok bool) {
	builder := s.sb.Select("nip", "nama_dosen", "fakultas", "program_studi").
		From(SchemaName + ".lecturer_profile")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	err := s.query(ctx, builder, func(rows pgx.Rows) error {
		var ref LecturerRef
		if err := rows.Scan(&ref.NIP, &ref.Name, &ref.Faculty, &ref.Program); err != nil {
			return err
		}
		refs = append(refs, ref)
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load existing lecturers, falling back to fabricated references")
		return nil, false
	}
	return refs, true
}

// SampleCourses reads up to limit courses with their enrollment counts. ok is
// false on read failure.
func (s *Store) SampleCourses(ctx context.Context, limit uint64) (refs []CourseRef, ok bool) {
	builder := s.sb.Select("kode_matkul", "nama_matkul", "fakultas", "program_studi", "jumlah_peserta").
		From(SchemaName + ".course_performance").
		Limit(limit)

	err := s.query(ctx, builder, func(rows pgx.Rows) error {
		var ref CourseRef
		if err := rows.Scan(&ref.Code, &ref.Name, &ref.Faculty, &ref.Program, &ref.Enrollment); err != nil {
			return err
		}
		refs = append(refs, ref)
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load existing courses, falling back to fabricated references")
		return nil, false
	}
	return refs, true
}
