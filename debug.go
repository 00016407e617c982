package sparkle

// debugLog reports tracked and inactive counts through the system logger.
// Only called when debug mode is on.
func (s *System) debugLog(stats Stats) {
	s.logger.Logf("objs: %d inactive: %d", stats.Tracked, stats.Inactive)
	if stats.Tracked > debugMaxTracked {
		s.logger.Logf("warning: %d tracked entities exceeds %d", stats.Tracked, debugMaxTracked)
	}
}

// debugMaxTracked is the tracked-entity count above which debug mode warns,
// usually a sign that particles never report done.
const debugMaxTracked = 10000
