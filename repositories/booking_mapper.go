package repositories

import (
	"fms-app/controllers/idgen"
	"fms-app/fms/booking"
	"fms-app/fms/cargo"
	"fms-app/models"
)

// ToModel flattens a booking into its table rows. Lines get fresh ids.
func ToModel(b booking.Booking) models.Booking {
	m := models.Booking{
		ID:                 b.ID,
		BookingNo:          b.BookingNo,
		Mode:               string(b.Mode),
		Status:             string(b.Status),
		BookingDate:        b.BookingDate,
		RequestedDate:      b.RequestedDate,
		BookingType:        b.BookingType,
		ServiceType:        b.ServiceType,
		Incoterms:          b.Incoterms,
		ShipperName:        b.Shipper.Name,
		ShipperCode:        b.Shipper.Code,
		ShipperContact:     b.Shipper.Contact,
		ConsigneeName:      b.Consignee.Name,
		ConsigneeCode:      b.Consignee.Code,
		ConsigneeContact:   b.Consignee.Contact,
		NotifyPartyName:    b.NotifyParty.Name,
		NotifyPartyCode:    b.NotifyParty.Code,
		NotifyPartyContact: b.NotifyParty.Contact,
		Carrier:            b.Carrier,
		CarrierBookingNo:   b.CarrierBookingNo,
		Vessel:             b.Vessel,
		Voyage:             b.Voyage,
		POL:                b.POL,
		POD:                b.POD,
		FinalDest:          b.FinalDest,
		ETD:                b.ETD,
		ETA:                b.ETA,
		ClosingDate:        b.ClosingDate,
		Commodity:          b.Commodity,
		GrossWeight:        b.GrossWeight,
		WeightUnit:         b.WeightUnit,
		Measurement:        b.Measurement,
		MeasurementUnit:    b.MeasurementUnit,
		ContainerType:      b.ContainerType,
		ContainerQty:       b.ContainerQty,
		FreightTerms:       b.FreightTerms,
		PaymentTerms:       b.PaymentTerms,
		SRNo:               b.SRNo,
		SRDate:             b.SRDate,
		BCNo:               b.BCNo,
		BCDate:             b.BCDate,
		Remarks:            b.Remarks,
		Version:            b.Version,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	for i, l := range b.Lines {
		m.Lines = append(m.Lines, models.BookingCargoLine{
			ID:               idgen.Generate(),
			BookingID:        b.ID,
			Seq:              i + 1,
			Mode:             string(l.Mode),
			ShipperName:      l.ShipperName,
			ShipperCode:      l.ShipperCode,
			ConsigneeName:    l.ConsigneeName,
			ConsigneeCode:    l.ConsigneeCode,
			Commodity:        l.Commodity,
			HSCode:           l.HSCode,
			PackageType:      l.PackageType,
			Pieces:           l.Pieces,
			Length:           l.Length,
			Width:            l.Width,
			Height:           l.Height,
			GrossWeight:      l.GrossWeight,
			ContainerType:    l.ContainerType,
			ContainerQty:     l.ContainerQty,
			Measurement:      l.Measurement,
			SpecialRequest:   l.SpecialRequest,
			Remarks:          l.Remarks,
			Volume:           l.Volume,
			VolumetricWeight: l.VolumetricWeight,
			ChargeableWeight: l.ChargeableWeight,
			Degraded:         l.Degraded,
		})
	}

	if sr := b.ShippingRequest; sr != nil {
		m.ShippingRequest = &models.ShippingRequest{
			ID:                 idgen.Generate(),
			BookingID:          b.ID,
			SRNo:               b.SRNo,
			ShippingDate:       sr.ShippingDate,
			CutOffDate:         sr.CutOffDate,
			CutOffTime:         sr.CutOffTime,
			DocCutOffDate:      sr.DocCutOffDate,
			DocCutOffTime:      sr.DocCutOffTime,
			CYLocation:         sr.CYLocation,
			SpecialInstruction: sr.SpecialInstruction,
			ContactPerson:      sr.ContactPerson,
			ContactPhone:       sr.ContactPhone,
			ContactEmail:       sr.ContactEmail,
		}
	}
	return m
}

// ToDomain rebuilds a booking from its rows. Totals are derived, never stored.
func ToDomain(m models.Booking) booking.Booking {
	b := booking.Booking{
		ID:               m.ID,
		BookingNo:        m.BookingNo,
		Mode:             cargo.Mode(m.Mode),
		Status:           booking.Status(m.Status),
		BookingDate:      m.BookingDate,
		RequestedDate:    m.RequestedDate,
		BookingType:      m.BookingType,
		ServiceType:      m.ServiceType,
		Incoterms:        m.Incoterms,
		Shipper:          booking.Party{Name: m.ShipperName, Code: m.ShipperCode, Contact: m.ShipperContact},
		Consignee:        booking.Party{Name: m.ConsigneeName, Code: m.ConsigneeCode, Contact: m.ConsigneeContact},
		NotifyParty:      booking.Party{Name: m.NotifyPartyName, Code: m.NotifyPartyCode, Contact: m.NotifyPartyContact},
		Carrier:          m.Carrier,
		CarrierBookingNo: m.CarrierBookingNo,
		Vessel:           m.Vessel,
		Voyage:           m.Voyage,
		POL:              m.POL,
		POD:              m.POD,
		FinalDest:        m.FinalDest,
		ETD:              m.ETD,
		ETA:              m.ETA,
		ClosingDate:      m.ClosingDate,
		Commodity:        m.Commodity,
		GrossWeight:      m.GrossWeight,
		WeightUnit:       m.WeightUnit,
		Measurement:      m.Measurement,
		MeasurementUnit:  m.MeasurementUnit,
		ContainerType:    m.ContainerType,
		ContainerQty:     m.ContainerQty,
		FreightTerms:     m.FreightTerms,
		PaymentTerms:     m.PaymentTerms,
		SRNo:             m.SRNo,
		SRDate:           m.SRDate,
		BCNo:             m.BCNo,
		BCDate:           m.BCDate,
		Remarks:          m.Remarks,
		Version:          m.Version,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	for _, l := range m.Lines {
		b.Lines = append(b.Lines, cargo.Line{
			Mode:             cargo.Mode(l.Mode),
			ShipperName:      l.ShipperName,
			ShipperCode:      l.ShipperCode,
			ConsigneeName:    l.ConsigneeName,
			ConsigneeCode:    l.ConsigneeCode,
			Commodity:        l.Commodity,
			HSCode:           l.HSCode,
			PackageType:      l.PackageType,
			Pieces:           l.Pieces,
			Length:           l.Length,
			Width:            l.Width,
			Height:           l.Height,
			GrossWeight:      l.GrossWeight,
			ContainerType:    l.ContainerType,
			ContainerQty:     l.ContainerQty,
			Measurement:      l.Measurement,
			SpecialRequest:   l.SpecialRequest,
			Remarks:          l.Remarks,
			Volume:           l.Volume,
			VolumetricWeight: l.VolumetricWeight,
			ChargeableWeight: l.ChargeableWeight,
			Degraded:         l.Degraded,
		})
	}
	b.Totals = cargo.Aggregate(b.Lines)

	if sr := m.ShippingRequest; sr != nil {
		b.ShippingRequest = &booking.ShippingRequest{
			ShippingDate:       sr.ShippingDate,
			CutOffDate:         sr.CutOffDate,
			CutOffTime:         sr.CutOffTime,
			DocCutOffDate:      sr.DocCutOffDate,
			DocCutOffTime:      sr.DocCutOffTime,
			CYLocation:         sr.CYLocation,
			SpecialInstruction: sr.SpecialInstruction,
			ContactPerson:      sr.ContactPerson,
			ContactPhone:       sr.ContactPhone,
			ContactEmail:       sr.ContactEmail,
		}
	}
	return b
}
