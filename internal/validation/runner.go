package validation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mbdb/rlbp-gissmo-check/models"
	"github.com/mbdb/rlbp-gissmo-check/pkg/gissmo"
)

// Runner fetches every inventory record of one station and feeds the
// validators. Fetches are sequential and blocking; the first transport
// failure aborts the run.
type Runner struct {
	client  *gissmo.Client
	checker *Checker
	rep     *Reporter
	log     zerolog.Logger
}

// NewRunner creates a Runner using client for fetches and rep for report
// output.
func NewRunner(client *gissmo.Client, rep *Reporter, log zerolog.Logger) *Runner {
	return &Runner{
		client:  client,
		checker: NewChecker(rep),
		rep:     rep,
		log:     log,
	}
}

// Check runs the full validation of one station code. Validation findings
// are printed through the reporter and never returned; the error is
// non-nil only when a fetch failed.
func (r *Runner) Check(ctx context.Context, staCode string) error {
	r.log.Debug().Str("station", staCode).Msg("fetching station")
	stations, err := r.client.StationsByCode(ctx, staCode)
	if err != nil {
		return err
	}
	if len(stations) == 0 {
		r.rep.Errorf("station code not existing in database")
		return nil
	}
	sta := &stations[0]

	var operator *models.Operator
	if sta.Operator != "" {
		if operator, err = r.client.OperatorByURL(ctx, sta.Operator); err != nil {
			return err
		}
	}

	docs, err := r.client.DocumentsForStation(ctx, sta.ID)
	if err != nil {
		return err
	}
	equipments, err := r.client.EquipmentsByStation(ctx, staCode)
	if err != nil {
		return err
	}
	channels, err := r.client.ChannelsByStation(ctx, staCode)
	if err != nil {
		return err
	}
	r.log.Debug().
		Int("documents", len(docs)).
		Int("equipments", len(equipments)).
		Int("channels", len(channels)).
		Msg("station records fetched")

	// The WAN configuration lives on the network equipment. The last
	// modem-like equipment wins when several are installed.
	var netEquipment *models.Equipment
	for i := range equipments {
		if isNetworkEquipment(&equipments[i]) {
			netEquipment = &equipments[i]
		}
	}

	var ips []models.IPAddress
	var services []models.Service
	if netEquipment != nil {
		if ips, err = r.client.IPAddressesByEquipment(ctx, netEquipment.ID); err != nil {
			return err
		}
		if services, err = r.client.ServicesByEquipment(ctx, netEquipment.ID); err != nil {
			return err
		}
	}

	set, err := r.resolveChannelSet(ctx, sta, channels)
	if err != nil {
		return err
	}

	r.checker.CheckStation(sta, operator)
	r.checker.CheckDocuments(docs)
	r.checker.CheckEquipments(equipments)
	r.checker.CheckIPs(ips)
	r.checker.CheckServices(services)
	r.checker.CheckChannels(set)

	r.log.Debug().
		Int("errors", r.rep.Errors()).
		Int("warnings", r.rep.Warnings()).
		Msg("validation finished")
	return nil
}

// resolveChannelSet prefetches everything the channel validators compare
// against: the network code of every channel, the equipment records and
// the instrument parameters of the kept channels. Lookups are cached per
// URL so each record is fetched once.
func (r *Runner) resolveChannelSet(ctx context.Context, sta *models.Station, channels []models.Channel) (*ChannelSet, error) {
	networkCodes := make(map[string]string)
	for i := range channels {
		url := channels[i].Network
		if url == "" {
			continue
		}
		if _, ok := networkCodes[url]; ok {
			continue
		}
		network, err := r.client.NetworkByURL(ctx, url)
		if err != nil {
			return nil, err
		}
		networkCodes[url] = network.Code
	}

	kept := KeptChannels(channels, networkCodes)

	equipments := make(map[string]*models.Equipment)
	parameters := make(map[int][]models.ChannelParameter)
	for i := range kept {
		for _, url := range kept[i].Equipments {
			if _, ok := equipments[url]; ok {
				continue
			}
			eq, err := r.client.EquipmentByURL(ctx, url)
			if err != nil {
				return nil, err
			}
			equipments[url] = eq
		}

		params, err := r.client.ParametersByChannel(ctx, kept[i].ID)
		if err != nil {
			return nil, err
		}
		parameters[kept[i].ID] = params
	}

	return &ChannelSet{
		Station:      sta,
		Channels:     channels,
		NetworkCodes: networkCodes,
		Equipments:   equipments,
		Parameters:   parameters,
	}, nil
}
