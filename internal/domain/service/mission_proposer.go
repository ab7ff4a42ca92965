package service

import (
	"fmt"

	"TimeTraveler-App/internal/domain/helper"
	"TimeTraveler-App/internal/domain/model"
)

// NoMissionMessage ミッション候補がひとつもないときの固定メッセージ
const NoMissionMessage = "現在挑戦できるミッションはありません。"

// MissionProposal ミッション提案の結果（コース構築には影響しない案内情報）
type MissionProposal struct {
	Message   string `json:"message"`
	Available bool   `json:"available"`
	SpotCount int    `json:"spot_count"`
}

// MissionProposer 過去写真ミッションの提案文を組み立てる
type MissionProposer struct{}

// NewMissionProposer 新しいMissionProposerインスタンスを作成する
func NewMissionProposer() *MissionProposer {
	return &MissionProposer{}
}

// ProposeMission 候補の中からミッション対象スポットを探してユーザーに提案する
// 対象が存在する場合は最寄りまでの距離（小数1桁）を含む招待文を返す
func (p *MissionProposer) ProposeMission(spots []model.Spot, userLocation model.LatLng) MissionProposal {
	var missionSpots []model.Spot
	for _, s := range spots {
		if s.IsMissionEligible() {
			missionSpots = append(missionSpots, s)
		}
	}

	if len(missionSpots) == 0 {
		return MissionProposal{
			Message:   NoMissionMessage,
			Available: false,
			SpotCount: 0,
		}
	}

	minDist := helper.MinDistance(userLocation, missionSpots)
	message := fmt.Sprintf(
		"過去写真撮影ミッションに挑戦してみませんか？\n一番近いミッションスポットは約%.1fkm先にあります。",
		minDist,
	)

	return MissionProposal{
		Message:   message,
		Available: true,
		SpotCount: len(missionSpots),
	}
}
