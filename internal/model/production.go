package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductionStage is one step on the shop floor. Orders advance through
// ProductionStages strictly in sequence.
type ProductionStage string

const (
	StageMaterialRequest ProductionStage = "material_request"
	StageCutting         ProductionStage = "cutting"
	StageMachining       ProductionStage = "machining"
	StageAssembly        ProductionStage = "assembly"
	StageQualityCheck    ProductionStage = "quality_check"
	StagePacking         ProductionStage = "packing"
	StageCompleted       ProductionStage = "completed"
)

// ProductionStages is the ordered sequence of stages.
var ProductionStages = []ProductionStage{
	StageMaterialRequest,
	StageCutting,
	StageMachining,
	StageAssembly,
	StageQualityCheck,
	StagePacking,
	StageCompleted,
}

// NextStage returns the stage after s, or empty when s is last or unknown.
func (s ProductionStage) NextStage() ProductionStage {
	for i, stage := range ProductionStages {
		if stage == s && i+1 < len(ProductionStages) {
			return ProductionStages[i+1]
		}
	}
	return ""
}

// ProductionOrder tracks one manufacturing run of a finished item.
type ProductionOrder struct {
	BaseModel
	ProdNo        string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"prod_no"`
	ItemCode      string          `gorm:"type:varchar(50);not null;index" json:"item_code" validate:"required"`
	ItemName      string          `gorm:"type:varchar(255)" json:"item_name"`
	BOMNo         string          `gorm:"type:varchar(50)" json:"bom_no"`
	PlannedQty    decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"planned_qty" validate:"gt=0"`
	WarehouseName string          `gorm:"type:varchar(100)" json:"warehouse_name"`
	CurrentStage  ProductionStage `gorm:"type:varchar(30);default:'material_request';index" json:"current_stage"`
	OnHold        bool            `gorm:"default:false" json:"on_hold"`
	StageLogs     []StageLog      `gorm:"foreignKey:ProdOrderID;constraint:OnDelete:CASCADE" json:"stage_logs,omitempty"`
}

// StageLog records when an order entered a stage.
type StageLog struct {
	BaseModel
	ProdOrderID uuid.UUID       `gorm:"type:char(36);not null;index" json:"prod_order_id"`
	Stage       ProductionStage `gorm:"type:varchar(30);not null" json:"stage"`
	EnteredAt   time.Time       `json:"entered_at"`
	Note        string          `gorm:"type:text" json:"note"`
}
