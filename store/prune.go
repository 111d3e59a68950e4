package store

import "context"

// PruneResult reports what PruneOrphanHarvests found.
type PruneResult struct {
	// OrphanPlantIDs are the plant_id values whose plant no longer exists
	// (or was never a valid id).
	OrphanPlantIDs []string
	Deleted        int64
}

// PruneOrphanHarvests deletes harvests whose plant_id does not resolve to a
// plant. Such harvests are left behind when a plant delete fails between its
// two steps. With dryRun set nothing is deleted.
func PruneOrphanHarvests(ctx context.Context, s Store, dryRun bool) (PruneResult, error) {
	ids, err := s.HarvestPlantIDs(ctx)
	if err != nil {
		return PruneResult{}, err
	}

	var res PruneResult
	for _, id := range ids {
		lookup, err := s.FindPlantByID(ctx, id)
		if err != nil {
			return res, err
		}
		if lookup.Found() {
			continue
		}
		res.OrphanPlantIDs = append(res.OrphanPlantIDs, id)
		if dryRun {
			continue
		}
		n, err := s.DeleteHarvestsByPlant(ctx, id)
		if err != nil {
			return res, err
		}
		res.Deleted += n
	}
	return res, nil
}
