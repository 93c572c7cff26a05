package model

import "testing"

func TestNextStage(t *testing.T) {
	tests := []struct {
		stage ProductionStage
		want  ProductionStage
	}{
		{StageMaterialRequest, StageCutting},
		{StageCutting, StageMachining},
		{StageMachining, StageAssembly},
		{StageAssembly, StageQualityCheck},
		{StageQualityCheck, StagePacking},
		{StagePacking, StageCompleted},
		{StageCompleted, ""},
		{ProductionStage("unknown"), ""},
	}
	for _, tt := range tests {
		if got := tt.stage.NextStage(); got != tt.want {
			t.Errorf("NextStage(%s) = %s, want %s", tt.stage, got, tt.want)
		}
	}
}

func TestPOStatusTransitions(t *testing.T) {
	if !PODraft.CanTransitionTo(POSubmitted) {
		t.Error("draft PO should be submittable")
	}
	if POClosed.CanTransitionTo(POSubmitted) {
		t.Error("closed PO must stay closed")
	}
	if POCancelled.CanTransitionTo(POReceived) {
		t.Error("cancelled PO cannot be received")
	}
	if !POSubmitted.CanTransitionTo(POReceived) {
		t.Error("submitted PO should be receivable")
	}
}

func TestSalesOrderStatusTransitions(t *testing.T) {
	if !SODraft.CanTransitionTo(SOSubmitted) {
		t.Error("draft order should be submittable")
	}
	if SODelivered.CanTransitionTo(SOCancelled) {
		t.Error("delivered order cannot be cancelled")
	}
	if !SODelivered.CanTransitionTo(SOClosed) {
		t.Error("delivered order should be closable")
	}
}
