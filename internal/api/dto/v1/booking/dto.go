package booking

import "github.com/osa911/astrobooking/internal/models"

// BookingRequest represents a consultation booking form submission.
// Only phone, email, consultationType and utrNumber are required; the match
// profile fields are filled by the marriage matching form.
type BookingRequest struct {
	FullName         string `form:"fullName" json:"fullName" binding:"omitempty,min=2,max=100"`
	DOB              string `form:"dob" json:"dob"`
	BirthTime        string `form:"birthTime" json:"birthTime"`
	BirthPlace       string `form:"birthPlace" json:"birthPlace"`
	Pincode          string `form:"pincode" json:"pincode"`
	Question         string `form:"question" json:"question"`
	Phone            string `form:"phone" json:"phone" binding:"required,phone10"`
	Email            string `form:"email" json:"email" binding:"required,email"`
	ConsultationType string `form:"consultationType" json:"consultationType" binding:"required"`
	Price            string `form:"price" json:"price"`
	UTRNumber        string `form:"utrNumber" json:"utrNumber" binding:"required"`

	GirlName    string `form:"girlName" json:"girlName"`
	GirlDOB     string `form:"girlDob" json:"girlDob"`
	GirlTime    string `form:"girlTime" json:"girlTime"`
	GirlPlace   string `form:"girlPlace" json:"girlPlace"`
	GirlPincode string `form:"girlPincode" json:"girlPincode"`
	BoyName     string `form:"boyName" json:"boyName"`
	BoyDOB      string `form:"boyDob" json:"boyDob"`
	BoyTime     string `form:"boyTime" json:"boyTime"`
	BoyPlace    string `form:"boyPlace" json:"boyPlace"`
	BoyPincode  string `form:"boyPincode" json:"boyPincode"`

	Girl2Name    string `form:"girl2Name" json:"girl2Name"`
	Girl2DOB     string `form:"girl2Dob" json:"girl2Dob"`
	Girl2Time    string `form:"girl2Time" json:"girl2Time"`
	Girl2Place   string `form:"girl2Place" json:"girl2Place"`
	Girl2Pincode string `form:"girl2Pincode" json:"girl2Pincode"`
	Boy2Name     string `form:"boy2Name" json:"boy2Name"`
	Boy2DOB      string `form:"boy2Dob" json:"boy2Dob"`
	Boy2Time     string `form:"boy2Time" json:"boy2Time"`
	Boy2Place    string `form:"boy2Place" json:"boy2Place"`
	Boy2Pincode  string `form:"boy2Pincode" json:"boy2Pincode"`

	StartDate         string `form:"startDate" json:"startDate"`
	EndDate           string `form:"endDate" json:"endDate"`
	MuhurthamLocation string `form:"muhurthamLocation" json:"muhurthamLocation"`
}

// ToModel converts the validated request into the domain booking
func (r *BookingRequest) ToModel() models.Booking {
	return models.Booking{
		FullName:          r.FullName,
		DOB:               r.DOB,
		BirthTime:         r.BirthTime,
		BirthPlace:        r.BirthPlace,
		Pincode:           r.Pincode,
		Question:          r.Question,
		Phone:             r.Phone,
		Email:             r.Email,
		ConsultationType:  r.ConsultationType,
		Price:             r.Price,
		UTRNumber:         r.UTRNumber,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		MuhurthamLocation: r.MuhurthamLocation,
		Girl:              models.Profile{Name: r.GirlName, DOB: r.GirlDOB, Time: r.GirlTime, Place: r.GirlPlace, Pincode: r.GirlPincode},
		Boy:               models.Profile{Name: r.BoyName, DOB: r.BoyDOB, Time: r.BoyTime, Place: r.BoyPlace, Pincode: r.BoyPincode},
		Girl2:             models.Profile{Name: r.Girl2Name, DOB: r.Girl2DOB, Time: r.Girl2Time, Place: r.Girl2Place, Pincode: r.Girl2Pincode},
		Boy2:              models.Profile{Name: r.Boy2Name, DOB: r.Boy2DOB, Time: r.Boy2Time, Place: r.Boy2Place, Pincode: r.Boy2Pincode},
	}
}
