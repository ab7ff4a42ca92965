package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"TimeTraveler-App/internal/domain/model"
	"TimeTraveler-App/internal/domain/repository"
	"TimeTraveler-App/internal/infrastructure/database"
)

type PostgresSpotsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresSpotsRepository(client *database.PostgreSQLClient) repository.SpotsRepository {
	return &PostgresSpotsRepository{
		client: client,
	}
}

const spotColumns = `id, name, description, address, lat, lng, sigungu_code, past_image_url,
	walking_activity, night_view, quiet_rest, experience_info, fun_sightseeing,
	with_children, with_pets, public_transport, car_transport, famous, clean_facility`

// SpotResult クエリ結果を受け取るための構造体（NULL列対応）
type SpotResult struct {
	ID           int
	Name         string
	Description  sql.NullString
	Address      sql.NullString
	Lat          float64
	Lng          float64
	SigunguCode  string
	PastImageURL sql.NullString

	WalkingActivity bool
	NightView       bool
	QuietRest       bool
	ExperienceInfo  bool
	FunSightseeing  bool
	WithChildren    bool
	WithPets        bool
	PublicTransport bool
	CarTransport    bool
	Famous          bool
	CleanFacility   bool
}

// ToSpot SpotResultをmodel.Spotに変換
func (sr *SpotResult) ToSpot() *model.Spot {
	spot := &model.Spot{
		ID:              sr.ID,
		Name:            sr.Name,
		Description:     sr.Description.String,
		Address:         sr.Address.String,
		Lat:             sr.Lat,
		Lng:             sr.Lng,
		SigunguCode:     sr.SigunguCode,
		WalkingActivity: sr.WalkingActivity,
		NightView:       sr.NightView,
		QuietRest:       sr.QuietRest,
		ExperienceInfo:  sr.ExperienceInfo,
		FunSightseeing:  sr.FunSightseeing,
		WithChildren:    sr.WithChildren,
		WithPets:        sr.WithPets,
		PublicTransport: sr.PublicTransport,
		CarTransport:    sr.CarTransport,
		Famous:          sr.Famous,
		CleanFacility:   sr.CleanFacility,
	}

	if sr.PastImageURL.Valid && sr.PastImageURL.String != "" {
		spot.PastImageURL = &sr.PastImageURL.String
	}

	return spot
}

func (r *PostgresSpotsRepository) scanSpot(scanner interface{ Scan(...any) error }) (*model.Spot, error) {
	var result SpotResult
	err := scanner.Scan(
		&result.ID, &result.Name, &result.Description, &result.Address,
		&result.Lat, &result.Lng, &result.SigunguCode, &result.PastImageURL,
		&result.WalkingActivity, &result.NightView, &result.QuietRest,
		&result.ExperienceInfo, &result.FunSightseeing, &result.WithChildren,
		&result.WithPets, &result.PublicTransport, &result.CarTransport,
		&result.Famous, &result.CleanFacility,
	)
	if err != nil {
		return nil, err
	}
	return result.ToSpot(), nil
}

func (r *PostgresSpotsRepository) querySpots(ctx context.Context, query string, args ...any) ([]model.Spot, error) {
	rows, err := r.client.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	defer rows.Close()

	var spots []model.Spot
	for rows.Next() {
		spot, err := r.scanSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("スポットデータスキャンエラー: %w", err)
		}
		spots = append(spots, *spot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("スポットデータの読み取りエラー: %w", err)
	}

	return spots, nil
}

func (r *PostgresSpotsRepository) GetAll(ctx context.Context) ([]model.Spot, error) {
	query := fmt.Sprintf(`SELECT %s FROM spots ORDER BY id`, spotColumns)
	return r.querySpots(ctx, query)
}

func (r *PostgresSpotsRepository) GetByID(ctx context.Context, id int) (*model.Spot, error) {
	query := fmt.Sprintf(`SELECT %s FROM spots WHERE id = $1`, spotColumns)

	row := r.client.DB.QueryRowContext(ctx, query, id)
	spot, err := r.scanSpot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("スポットID %d が見つかりません", id)
		}
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}

	return spot, nil
}

func (r *PostgresSpotsRepository) GetBySigunguCode(ctx context.Context, sigunguCode string) ([]model.Spot, error) {
	query := fmt.Sprintf(`SELECT %s FROM spots WHERE sigungu_code = $1 ORDER BY id`, spotColumns)
	return r.querySpots(ctx, query, sigunguCode)
}

func (r *PostgresSpotsRepository) GetExcludingSigunguCodes(ctx context.Context, sigunguCodes []string) ([]model.Spot, error) {
	query := fmt.Sprintf(`SELECT %s FROM spots WHERE NOT (sigungu_code = ANY($1)) ORDER BY id`, spotColumns)
	return r.querySpots(ctx, query, pq.Array(sigunguCodes))
}

func (r *PostgresSpotsRepository) GetByBoundingBox(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.Spot, error) {
	if minLng >= maxLng || minLat >= maxLat {
		return nil, fmt.Errorf("無効な境界ボックス: min値がmax値以上です")
	}

	query := fmt.Sprintf(
		`SELECT %s FROM spots WHERE lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4 ORDER BY id`,
		spotColumns,
	)
	return r.querySpots(ctx, query, minLat, maxLat, minLng, maxLng)
}
