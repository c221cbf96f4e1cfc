package power

// A Breakdown splits total power into its switching and leakage parts.
// All figures are in watts.
type Breakdown struct {
	Dynamic float64
	Static  float64
	Total   float64
}

// A Model computes power draw from an operating point and a utilization
// figure. Its coefficients are calibration inputs supplied at construction.
//
//	dynamic = C * voltage^2 * frequency * ipc
//	static  = k * voltage
//
// For a fixed ipc the result is non-decreasing in both voltage and
// frequency, which the optimum search in the analysis package relies on.
type Model struct {
	dynamicCoeff float64
	leakageCoeff float64
}

// MakeModel creates a model from a dynamic (capacitance-activity) coefficient
// in W/(V^2*Hz) and a leakage coefficient in W/V.
func MakeModel(dynamicCoeff, leakageCoeff float64) Model {
	return Model{
		dynamicCoeff: dynamicCoeff,
		leakageCoeff: leakageCoeff,
	}
}

// DynamicCoefficient returns the capacitance-activity constant of the model.
func (m Model) DynamicCoefficient() float64 {
	return m.dynamicCoeff
}

// LeakageCoefficient returns the leakage constant of the model.
func (m Model) LeakageCoefficient() float64 {
	return m.leakageCoeff
}

// Power evaluates the model. Voltage and frequency must be positive; an ipc
// of zero is a legal idle reading and yields zero dynamic power.
func (m Model) Power(v Voltage, f Freq, ipc float64) (Breakdown, error) {
	if v <= 0 {
		return Breakdown{}, &NonPositiveInputError{
			Name: "voltage", Value: float64(v)}
	}
	if f <= 0 {
		return Breakdown{}, &NonPositiveInputError{
			Name: "frequency", Value: float64(f)}
	}
	if ipc < 0 {
		return Breakdown{}, &NonPositiveInputError{Name: "ipc", Value: ipc}
	}

	b := Breakdown{
		Dynamic: m.dynamicCoeff * float64(v) * float64(v) * float64(f) * ipc,
		Static:  m.leakageCoeff * float64(v),
	}
	b.Total = b.Dynamic + b.Static

	return b, nil
}

// PowerAt evaluates the model at an operating point.
func (m Model) PowerAt(p OperatingPoint, ipc float64) (Breakdown, error) {
	return m.Power(p.Voltage, p.Freq, ipc)
}
