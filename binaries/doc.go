// Package binaries defines the structured records that replace tabular
// column addressing for binary/multiple stellar systems, plus the
// hidden-companion mass assignment that prepares a catalog for the
// velocity pipelines.
//
// 🚀 Data model:
//
//	A System is one observed wide binary: the photometric and astrometric
//	observables (magnitudes, parallaxes, 2D separation, velocity
//	components with uncertainties) plus three orbital Slots:
//	  • Outer    — the observed wide pair itself
//	  • HiddenA  — an unresolved close companion to the primary
//	  • HiddenB  — an unresolved close companion to the secondary
//	Each Slot owns an independent Orbit record (sampled angles, derived
//	separations, velocities, photometric distance). Slots never alias:
//	the same quantity for different companions lives in different records,
//	not in suffix-mangled column names.
//
// ✨ AssignHiddenCompanions tags each system as hosting hidden companions
// with a configurable fraction, splits the blended light of each hosting
// star into host + companion via a power-law magnitude-difference draw,
// converts magnitudes to masses through the mass–luminosity relation, and
// fills in the slot masses, parallaxes and propagated velocity
// uncertainty that the pipelines consume.
//
// A Catalog is just a slice of systems — the in-memory tabular exchange
// format of this module. Loading catalogs from CSV and writing them back
// is an external collaborator's job.
package binaries
