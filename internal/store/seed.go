package store

import (
	"context"

	"github.com/google/uuid"
)

func f(v float64) *float64 { return &v }

type seedWell struct {
	id, name, location string
	operations         []OperationRow
	equipment          []EquipmentRow
}

// Seed loads the bundled sample wells when the directory is empty. A
// non-empty directory is left untouched.
func (s *Store) Seed(ctx context.Context) error {
	existing, err := s.ListWells(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, w := range seedWells() {
		if _, err := s.CreateWell(ctx, w.id, w.name, w.location); err != nil {
			return err
		}
		for _, op := range w.operations {
			op.WellID = w.id
			if op.ID == "" {
				op.ID = uuid.NewString()
			}
			if err := s.InsertOperation(ctx, op); err != nil {
				return err
			}
		}
		for _, eq := range w.equipment {
			eq.WellID = w.id
			if eq.ID == "" {
				eq.ID = uuid.NewString()
			}
			if err := s.InsertEquipment(ctx, eq); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedWells() []seedWell {
	return []seedWell{
		{
			id: "WELL-01", name: "Obigbo North 7", location: "Niger Delta",
			operations: []OperationRow{
				{DepthFrom: f(0), DepthTo: f(200), OperationType: "Drilling",
					Description: "Drilled ahead 17-1/2in hole", DurationHours: f(3), RecordedAt: "2024-02-08"},
				{DepthFrom: f(200), DepthTo: f(400), OperationType: "Drilling",
					Description: "Drilled ahead, normal parameters", DurationHours: f(3.5), RecordedAt: "2024-02-09"},
				{DepthFrom: f(400), DepthTo: f(600), OperationType: "Casing",
					Description: "Ran and cemented casing", DurationHours: f(2), RecordedAt: "2024-02-10"},
				{DepthFrom: f(600), DepthTo: f(800), OperationType: "Reaming",
					Description: "Tight hole on connections, backreamed interval", DurationHours: f(5),
					NPTHours: f(1.1), RecordedAt: "2024-02-11"},
				{DepthFrom: f(800), DepthTo: f(1000), OperationType: "Drilling",
					Description: "Drilled ahead 12-1/4in hole", DurationHours: f(3), RecordedAt: "2024-02-12"},
			},
			equipment: []EquipmentRow{
				{ID: "eq-mudpumps", Name: "Mud Pumps", Tag: "Surface", RiskScore: f(28),
					HoursUsed: 920, HoursMax: 3000, NextHours: 580,
					Note: "Operating efficiently. Routine maintenance schedule on track."},
				{ID: "eq-topdrive", Name: "Top Drive", Tag: "Surface", RiskScore: f(18),
					HoursUsed: 400, HoursMax: 2400, NextHours: 900,
					Note: "Excellent condition. Recent inspection completed with no issues identified."},
			},
		},
		{
			id: "WELL-02", name: "Umuechem 12", location: "Niger Delta",
			operations: []OperationRow{
				{DepthFrom: f(0), DepthTo: f(200), OperationType: "Drilling",
					Description: "Spudded well, drilled surface hole", DurationHours: f(3), RecordedAt: "2024-02-28"},
				{DepthFrom: f(200), DepthTo: f(400), OperationType: "Drilling",
					Description: "Drilled ahead, normal parameters", DurationHours: f(3), RecordedAt: "2024-03-01"},
				{DepthFrom: f(400), DepthTo: f(600), OperationType: "Drilling",
					Description: "Seepage mud losses, pumped LCM pill", DurationHours: f(4.5),
					NPTHours: f(1.2), RecordedAt: "2024-03-02"},
				{DepthFrom: f(600), DepthTo: f(800), OperationType: "Drilling",
					Description: "Drilled ahead", DurationHours: f(3), RecordedAt: "2024-03-03"},
				{DepthFrom: f(800), DepthTo: f(1000), OperationType: "Drilling",
					Description: "High torque, adjusted parameters", DurationHours: f(4),
					NPTHours: f(1.0), RecordedAt: "2024-03-05"},
				{DepthFrom: f(1000), DepthTo: f(1200), OperationType: "Tripping",
					Description: "Pipe stuck while tripping out, worked string free", DurationHours: f(6),
					NPTHours: f(3.2), RecordedAt: "2024-03-06"},
			},
			equipment: []EquipmentRow{
				{ID: "eq-drillbit", Name: "Drill Bit", Tag: "Primary", RiskScore: f(78),
					HoursUsed: 245, HoursMax: 300, StressEvents: 2, NextHours: 55,
					Note: "Approaching recommended replacement threshold. Reaming has accelerated wear."},
				{ID: "eq-drillstring", Name: "Drill String", Tag: "Primary", RiskScore: f(61),
					HoursUsed: 1600, HoursMax: 2500, StressEvents: 1, NextHours: 420,
					Note: "Operating within normal parameters. Recent stuck pipe event requires monitoring."},
				{ID: "eq-motor", Name: "Drilling Motor", Tag: "Downhole", RiskScore: f(54),
					HoursUsed: 310, HoursMax: 600, NextHours: 250,
					Note: "Performance indicators within acceptable range. No immediate action required."},
			},
		},
		{
			id: "WELL-03", name: "Korokoro 4", location: "Ogoni Field",
			operations: []OperationRow{
				{DepthFrom: f(0), DepthTo: f(200), OperationType: "Drilling",
					Description: "Spudded well, drilled surface hole", DurationHours: f(3), RecordedAt: "2024-04-12"},
				{DepthFrom: f(200), DepthTo: f(400), OperationType: "Drilling",
					Description: "Drilled ahead, normal parameters", DurationHours: f(3), RecordedAt: "2024-04-13"},
				{DepthFrom: f(400), DepthTo: f(600), OperationType: "Reaming",
					Description: "Tight hole, backreamed to shoe", DurationHours: f(5),
					NPTHours: f(1.8), RecordedAt: "2024-04-14"},
				{DepthFrom: f(600), DepthTo: f(800), OperationType: "Drilling",
					Description: "Drilled ahead", DurationHours: f(3), RecordedAt: "2024-04-15"},
				{DepthFrom: f(800), DepthTo: f(1000), OperationType: "Drilling",
					Description: "Mud losses, pumped LCM pill", DurationHours: f(4.5),
					NPTHours: f(1.5), RecordedAt: "2024-04-16"},
				{DepthFrom: f(1000), DepthTo: f(1200), OperationType: "Tripping",
					Description: "Pipe stuck, jarred down and spotted freeing pill", DurationHours: f(7),
					NPTHours: f(3.5), RecordedAt: "2024-04-18"},
				{DepthFrom: f(1200), DepthTo: f(1400), OperationType: "Drilling",
					Description: "Drilled ahead, normal parameters", DurationHours: f(3), RecordedAt: "2024-04-19"},
				{DepthFrom: f(1400), DepthTo: f(1600), OperationType: "Drilling",
					Description: "High torque after stuck-pipe interval", DurationHours: f(4.5),
					NPTHours: f(1.5), RecordedAt: "2024-04-21"},
			},
			equipment: []EquipmentRow{
				{ID: "eq-drillstring", Name: "Drill String", Tag: "Primary", RiskScore: f(65),
					HoursUsed: 1850, HoursMax: 2500, StressEvents: 2, NextHours: 500,
					Note: "Operating within normal parameters. Recent stuck pipe event requires continued monitoring."},
				{ID: "eq-drillbit", Name: "Drill Bit", Tag: "Primary", RiskScore: f(82),
					HoursUsed: 245, HoursMax: 300, StressEvents: 3, NextHours: 55,
					Note: "Approaching recommended replacement threshold. Multiple reaming operations have accelerated wear."},
				{ID: "eq-motor", Name: "Drilling Motor", Tag: "Downhole", RiskScore: f(58),
					HoursUsed: 380, HoursMax: 600, StressEvents: 1, NextHours: 220,
					Note: "Performance indicators within acceptable range. No immediate action required."},
				{ID: "eq-topdrive", Name: "Top Drive", Tag: "Surface", RiskScore: f(28),
					HoursUsed: 620, HoursMax: 2800, NextHours: 950,
					Note: "Excellent condition. Recent inspection completed with no issues identified."},
				{ID: "eq-mudpumps", Name: "Mud Pumps", Tag: "Surface", RiskScore: f(35),
					HoursUsed: 920, HoursMax: 3000, NextHours: 580,
					Note: "Operating efficiently. Routine maintenance schedule on track."},
				{ID: "eq-bha", Name: "Bottom Hole Assembly", Tag: "Downhole", RiskScore: f(70),
					HoursUsed: 280, HoursMax: 400, StressEvents: 2, NextHours: 120,
					Note: "Exposure to high-stress events. Recommend inspection at next trip."},
			},
		},
	}
}
