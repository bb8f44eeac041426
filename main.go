package main

import (
	"math/big"

	"github.com/cuthbertLab/quaver/config"
	"github.com/cuthbertLab/quaver/duration"
	"github.com/cuthbertLab/quaver/logger"
)

func main() {
	// We don't process any CLI flags for now, so just run the demo.
	Run()
}

// Run walks a few quarter lengths through the engine and logs the notation.
func Run() {
	log := logger.GetProjectLogger()

	log.Info("Initializing config...")
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("error creating config. err='%v'", err)
	}

	engine := duration.NewDecomposer(cfg)

	samples := []*big.Rat{
		big.NewRat(2, 1),  // half
		big.NewRat(3, 1),  // dotted half
		big.NewRat(7, 2),  // double dotted half
		big.NewRat(2, 3),  // triplet quarter
		big.NewRat(5, 2),  // half tied to eighth
	}
	for _, ql := range samples {
		units, err := engine.Decompose(ql)
		if err != nil {
			log.Errorf("could not notate quarter length %s. err='%v'", ql.RatString(), err)
			continue
		}
		d := duration.NewDurationFromComponents(units)
		log.Infof("%s quarter lengths -> %s", ql.RatString(), d)
	}

	// Bar a long note across whole-note measures.
	long, err := duration.NewDurationFromQuarterLength(big.NewRat(19, 2))
	if err != nil {
		log.Fatalf("error building duration. err='%v'", err)
	}
	measures, err := long.Expand(nil)
	if err != nil {
		log.Fatalf("error expanding duration. err='%v'", err)
	}
	for i, m := range measures {
		log.Infof("measure %d: %s", i+1, m)
	}
}
