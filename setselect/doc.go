// Package setselect partitions a reduced network's branches and
// generators into the disjoint operational sets the IF search consumes:
// R (external contingencies), R_gens (external generators), T (monitored
// internal elements), and I (contingencies eligible for the second
// outage). Radial branches (self-PTDF >= 1-eps) are excluded from all
// three branch sets.
package setselect
